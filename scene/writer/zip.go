package writer

import (
	"archive/zip"
	"io"

	"github.com/achilleasa/polaris-rt/log"
	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/scene/reader"
)

type zipSceneWriter struct {
	logger log.Logger
	out    io.Writer
}

// Create a writer that packs the JSON scene description into a zip archive.
func NewZipSceneWriter(out io.Writer) Writer {
	return &zipSceneWriter{
		logger: log.New("zip writer"),
		out:    out,
	}
}

func (w *zipSceneWriter) Write(sc *scene.Scene) error {
	zw := zip.NewWriter(w.out)

	entry, err := zw.Create(reader.ZipSceneEntry)
	if err != nil {
		return err
	}
	if err = NewJSONSceneWriter(entry).Write(sc); err != nil {
		return err
	}

	w.logger.Infof("packed scene with %d objects", len(sc.Objects))
	return zw.Close()
}
