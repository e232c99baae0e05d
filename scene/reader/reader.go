package reader

import (
	"context"
	"fmt"

	"github.com/achilleasa/polaris-rt/asset"
	"github.com/achilleasa/polaris-rt/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or http(s) URL. The reader is selected
// based on the resource extension.
func ReadScene(ctx context.Context, location string) (*scene.Scene, error) {
	res, err := asset.NewResource(ctx, location, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	reader, err := readerFor(ctx, res)
	if err != nil {
		return nil, err
	}
	return reader.Read(res)
}

func readerFor(ctx context.Context, res *asset.Resource) (Reader, error) {
	switch res.Ext() {
	case ".json":
		return newJSONSceneReader(ctx, nil), nil
	case ".zip":
		return newZipSceneReader(ctx), nil
	}
	return nil, fmt.Errorf("reader: unsupported scene format %q", res.Ext())
}
