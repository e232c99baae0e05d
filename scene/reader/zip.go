package reader

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/achilleasa/polaris-rt/asset"
	"github.com/achilleasa/polaris-rt/log"
	"github.com/achilleasa/polaris-rt/scene"
)

// Reads scene archives produced by the zip scene writer. The archive must
// contain a JSON scene description named ZipSceneEntry. Documents included
// by the scene entry are resolved next to the archive.
type zipSceneReader struct {
	logger log.Logger
	ctx    context.Context
}

func newZipSceneReader(ctx context.Context) *zipSceneReader {
	return &zipSceneReader{
		logger: log.New("zip reader"),
		ctx:    ctx,
	}
}

// Read scene definition from zip file.
func (r *zipSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`unpacking scene archive "%s"`, sceneRes.Path())

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(sceneRes)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("[%s] error: %w", sceneRes.Path(), err)
	}

	for _, f := range zr.File {
		if f.Name != ZipSceneEntry {
			r.logger.Debugf("skipping archive entry %q", f.Name)
			continue
		}

		entry, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("[%s] error: %w", sceneRes.Path(), err)
		}
		defer entry.Close()

		return newJSONSceneReader(r.ctx, sceneRes).Read(asset.NewResourceFromStream(sceneRes.Path()+"/"+ZipSceneEntry, entry))
	}

	return nil, fmt.Errorf("[%s] error: archive does not contain %s", sceneRes.Path(), ZipSceneEntry)
}
