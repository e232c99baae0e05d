package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/achilleasa/polaris-rt/scene/writer"
	"github.com/urfave/cli"
)

// Display scene info. If no scene argument is given, the demo scene is used.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(context.Background(), ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	return nil
}

// Write a scene description as JSON to stdout or, if the out flag is set, to
// a .json or .zip file. If no scene argument is given, the demo scene is used.
func DumpScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(context.Background(), ctx.Args().First())
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	if outFile == "" {
		return writer.NewJSONSceneWriter(os.Stdout).Write(sc)
	}

	if err = writer.WriteScene(sc, outFile); err != nil {
		return err
	}
	logger.Noticef("wrote scene to %s", outFile)
	return nil
}

// Pack JSON scene files into zip scene archives.
func PackScene(ctx *cli.Context) error {
	setupLogging(ctx)

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(sceneFile, ".json") {
			logger.Warningf("skipping unsupported file %s", sceneFile)
			continue
		}

		logger.Noticef("packing scene: %s", sceneFile)
		sc, err := loadScene(context.Background(), sceneFile)
		if err != nil {
			return err
		}

		zipFile := strings.TrimSuffix(sceneFile, ".json") + ".zip"
		if err = writer.WriteScene(sc, zipFile); err != nil {
			return err
		}
	}

	return nil
}
