package writer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/achilleasa/polaris-rt/log"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Upper bound for a single upload.
const UploadTimeout = 30 * time.Second

var ErrNoBucket = errors.New("writer: no S3 bucket configured")

// S3 connection settings. Endpoint may point to any S3 compatible store.
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string

	// Canned ACL applied to uploaded objects; omitted if empty.
	ACL string
}

// Publishes rendered frames to an S3 bucket.
type S3Publisher struct {
	logger log.Logger
	client *s3.S3
	bucket string
	acl    string
}

// Create a publisher for the bucket described by cfg.
func NewS3Publisher(cfg S3Config) (*S3Publisher, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("writer: could not create S3 session: %w", err)
	}

	return &S3Publisher{
		logger: log.New("s3 publisher"),
		client: s3.New(sess),
		bucket: cfg.Bucket,
		acl:    cfg.ACL,
	}, nil
}

// Upload encoded image data under key.
func (p *S3Publisher) Publish(ctx context.Context, key string, data []byte, format Format) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(format.ContentType()),
	}
	if p.acl != "" {
		input.ACL = aws.String(p.acl)
	}

	if _, err := p.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("writer: failed to upload %s: %w", key, err)
	}

	p.logger.Noticef("uploaded s3://%s/%s (%d bytes)", p.bucket, key, len(data))
	return nil
}
