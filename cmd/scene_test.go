package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli"
)

func sceneContext(t *testing.T, outFile string, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("out", outFile, "")
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestDumpAndPackScene(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "demo.json")
	if err := DumpScene(sceneContext(t, jsonFile)); err != nil {
		t.Fatal(err)
	}

	if err := ShowSceneInfo(sceneContext(t, "", jsonFile)); err != nil {
		t.Fatal(err)
	}

	if err := PackScene(sceneContext(t, "", jsonFile, filepath.Join(dir, "skipped.obj"))); err != nil {
		t.Fatal(err)
	}
	zipFile := filepath.Join(dir, "demo.zip")
	if _, err := os.Stat(zipFile); err != nil {
		t.Fatalf("expected packed scene archive: %v", err)
	}

	sc, err := loadScene(context.Background(), zipFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Objects) != 4 {
		t.Fatalf("expected packed scene to contain 4 objects; got %d", len(sc.Objects))
	}
}
