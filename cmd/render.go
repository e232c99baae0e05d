package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/achilleasa/polaris-rt/asset/writer"
	"github.com/achilleasa/polaris-rt/renderer"
	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/scene/reader"
	"github.com/achilleasa/polaris-rt/tracer"
	"github.com/urfave/cli"
)

// Render a still frame and write it to disk.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sc, err := loadScene(runCtx, ctx.String("scene"))
	if err != nil {
		return err
	}

	r, err := setupRenderer(ctx, sc)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Notice("rendering frame")
	if err = r.Render(); err != nil {
		return err
	}
	displayFrameStats(r.Stats())

	// Encode frame
	imgFile := ctx.String("out")
	format, err := outputFormat(ctx.String("format"), imgFile)
	if err != nil {
		return err
	}

	start := time.Now()
	img := writer.Resize(r.Frame().RGBA(), uint(ctx.Int("resize")))
	if err = writer.WriteImage(imgFile, img, format); err != nil {
		return err
	}
	logger.Noticef("wrote %s frame to %s in %d ms", format, imgFile, time.Since(start).Nanoseconds()/1e6)

	if key := ctx.String("upload"); key != "" {
		data, err := writer.EncodeBytes(img, format)
		if err != nil {
			return err
		}
		if err = uploadFrame(runCtx, ctx, key, data, format); err != nil {
			return err
		}
	}

	if ctx.Bool("open") {
		return openFile(imgFile)
	}
	return nil
}

// Render a sequence of frames and report per-frame and average render times.
func RenderBench(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(context.Background(), ctx.String("scene"))
	if err != nil {
		return err
	}

	r, err := setupRenderer(ctx, sc)
	if err != nil {
		return err
	}
	defer r.Close()

	numFrames := ctx.Int("frames")
	if numFrames <= 0 {
		return fmt.Errorf("frame count must be > 0; got %d", numFrames)
	}

	var total time.Duration
	for frame := 0; frame < numFrames; frame++ {
		if err = r.Render(); err != nil {
			return err
		}

		stats := r.Stats()
		total += stats.RenderTime
		logger.Infof("frame %d rendered in %s", frame, stats.RenderTime)
		if frame == numFrames-1 {
			displayFrameStats(stats)
		}
	}

	logger.Noticef("rendered %d frames; average frame time %s", numFrames, total/time.Duration(numFrames))
	return nil
}

// Load the scene from a file or URL, falling back to the builtin demo scene.
func loadScene(ctx context.Context, location string) (*scene.Scene, error) {
	if location == "" {
		logger.Notice("no scene specified; using the demo scene")
		return scene.NewDemoScene()
	}
	return reader.ReadScene(ctx, location)
}

func setupRenderer(ctx *cli.Context, sc *scene.Scene) (renderer.Renderer, error) {
	shader, err := tracer.ShaderByName(ctx.String("shading"))
	if err != nil {
		return nil, err
	}
	scheduler, err := tracer.SchedulerByName(ctx.String("scheduler"))
	if err != nil {
		return nil, err
	}

	if ctx.Int("width") <= 0 || ctx.Int("height") <= 0 || ctx.Int("workers") < 0 {
		return nil, fmt.Errorf("invalid render settings: width %d, height %d, workers %d", ctx.Int("width"), ctx.Int("height"), ctx.Int("workers"))
	}

	opts := renderer.Options{
		FrameW:     uint32(ctx.Int("width")),
		FrameH:     uint32(ctx.Int("height")),
		NumTracers: uint32(ctx.Int("workers")),
		PixelScale: float32(ctx.Float64("pixel-scale")),
	}
	return renderer.NewDefault(sc, scheduler, shader, opts)
}

// Pick the output format from the explicit format flag or the file extension.
func outputFormat(name, filename string) (writer.Format, error) {
	if name != "" {
		return writer.ParseFormat(name)
	}
	return writer.FormatFromFilename(filename)
}

func uploadFrame(runCtx context.Context, ctx *cli.Context, key string, data []byte, format writer.Format) error {
	publisher, err := writer.NewS3Publisher(writer.S3Config{
		AccessKey: ctx.String("s3-access-key"),
		SecretKey: ctx.String("s3-secret-key"),
		Endpoint:  ctx.String("s3-endpoint"),
		Region:    ctx.String("s3-region"),
		Bucket:    ctx.String("s3-bucket"),
		ACL:       ctx.String("s3-acl"),
	})
	if err != nil {
		return err
	}
	return publisher.Publish(runCtx, key, data, format)
}

// Open file with the platform's default viewer.
func openFile(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	var viewer *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		viewer = exec.Command("open", absPath)
	case "windows":
		viewer = exec.Command("cmd", "/c", "start", "", absPath)
	default:
		viewer = exec.Command("xdg-open", absPath)
	}

	if err = viewer.Start(); err != nil {
		return fmt.Errorf("could not open %s: %w", file, err)
	}
	return viewer.Process.Release()
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", stats.Table())
}
