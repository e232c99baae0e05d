package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/polaris-rt/asset/writer"
	"github.com/urfave/cli"
)

func renderContext(t *testing.T, args map[string]string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Int("width", 32, "")
	set.Int("height", 24, "")
	set.Int("workers", 3, "")
	set.String("scheduler", "perfect", "")
	set.String("shading", "lit", "")
	set.Float64("pixel-scale", 0.16, "")
	set.String("scene", "", "")
	set.String("out", "", "")
	set.String("format", "", "")
	set.Int("resize", 0, "")
	set.Bool("open", false, "")
	set.String("upload", "", "")
	set.Int("frames", 2, "")

	for name, value := range args {
		if err := set.Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestRenderFrame(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "frame.ppm")
	if err := RenderFrame(renderContext(t, map[string]string{"out": outFile})); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	header := []byte("P6 32 24 255\n")
	if !bytes.HasPrefix(data, header) || len(data) != len(header)+3*32*24 {
		t.Fatalf("unexpected ppm output: %d bytes", len(data))
	}
}

func TestRenderFrameResizedPNG(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "frame.img")
	err := RenderFrame(renderContext(t, map[string]string{
		"out":     outFile,
		"format":  "png",
		"resize":  "16",
		"shading": "depth",
	}))
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("expected output to be a png image")
	}
}

func TestRenderFrameWriteError(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "missing", "frame.png")
	err := RenderFrame(renderContext(t, map[string]string{"out": outFile}))
	if err == nil || !strings.HasPrefix(err.Error(), "writer: ") {
		t.Fatalf("expected a writer error; got %v", err)
	}
}

func TestRenderSettingErrors(t *testing.T) {
	type spec struct {
		args   map[string]string
		expErr string
	}

	specs := []spec{
		{map[string]string{"shading": "toon"}, `tracer: unknown shader "toon"`},
		{map[string]string{"scheduler": "random"}, `tracer: unknown scheduler "random"`},
		{map[string]string{"width": "0"}, "invalid render settings: width 0, height 24, workers 3"},
		{map[string]string{"out": "frame.jpg"}, `writer: unsupported image format ".jpg"`},
	}

	for specIndex, s := range specs {
		err := RenderFrame(renderContext(t, s.args))
		if err == nil || err.Error() != s.expErr {
			t.Fatalf("[spec %d] expected error %q; got %v", specIndex, s.expErr, err)
		}
	}
}

func TestRenderBench(t *testing.T) {
	if err := RenderBench(renderContext(t, nil)); err != nil {
		t.Fatal(err)
	}

	err := RenderBench(renderContext(t, map[string]string{"frames": "0"}))
	if err == nil || err.Error() != "frame count must be > 0; got 0" {
		t.Fatalf("expected frame count error; got %v", err)
	}
}

func TestOutputFormat(t *testing.T) {
	format, err := outputFormat("tiff", "frame.png")
	if err != nil || format != writer.FormatTIFF {
		t.Fatalf("expected explicit format to take precedence; got %s, %v", format, err)
	}

	format, err = outputFormat("", "frame.bmp")
	if err != nil || format != writer.FormatBMP {
		t.Fatalf("expected format to be detected from the extension; got %s, %v", format, err)
	}
}

func TestLoadDemoScene(t *testing.T) {
	sc, err := loadScene(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Objects) != 4 || len(sc.Lights) != 3 {
		t.Fatalf("expected the demo scene; got %d objects and %d lights", len(sc.Objects), len(sc.Lights))
	}
}
