package main

import (
	"os"

	"github.com/achilleasa/polaris-rt/cmd"
	"github.com/achilleasa/polaris-rt/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

var logger = log.New("polaris")

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:   "width",
			Value:  1024,
			Usage:  "frame width",
			EnvVar: "POLARIS_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Value:  768,
			Usage:  "frame height",
			EnvVar: "POLARIS_HEIGHT",
		},
		cli.IntFlag{
			Name:   "workers",
			Value:  0,
			Usage:  "number of cpu tracers; 0 uses one tracer per cpu",
			EnvVar: "POLARIS_WORKERS",
		},
		cli.StringFlag{
			Name:   "scheduler",
			Value:  "naive",
			Usage:  "block scheduler (naive, perfect)",
			EnvVar: "POLARIS_SCHEDULER",
		},
		cli.StringFlag{
			Name:   "shading",
			Value:  "lit",
			Usage:  "shading mode (lit, depth)",
			EnvVar: "POLARIS_SHADING",
		},
		cli.Float64Flag{
			Name:   "pixel-scale",
			Value:  0.008,
			Usage:  "world-space size of a pixel on the camera screen plane",
			EnvVar: "POLARIS_PIXEL_SCALE",
		},
		cli.StringFlag{
			Name:   "scene, s",
			Usage:  "scene file (.json, .zip) or URL; the demo scene is used if omitted",
			EnvVar: "POLARIS_SCENE",
		},
	}
}

func main() {
	// Settings in a local .env file fill in unset environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warningf("could not load .env file: %s", err.Error())
	}

	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "polaris-rt"
	app.Usage = "render sphere scenes using ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level (debug, info, notice, warning, error)",
			EnvVar: "POLARIS_LOG_LEVEL",
		},
		cli.StringSliceFlag{
			Name:   "log-module",
			Usage:  "override the log level of a single module (e.g. \"json reader=debug\"); may be repeated",
			EnvVar: "POLARIS_LOG_MODULES",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-devices",
			Usage:  "list the cpu tracers used for rendering",
			Action: cmd.ListDevices,
		},
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:  "frame",
					Usage: "render single frame",
					Description: `
Render a single frame and write it as a binary pixmap (ppm), png, bmp or tiff
image. The format is detected from the output file extension unless the
format flag is specified.

The rendered image may optionally be uploaded to an S3 bucket and/or opened
with the system image viewer.`,
					Flags: append(renderFlags(),
						cli.StringFlag{
							Name:   "out, o",
							Value:  "frame.ppm",
							Usage:  "image filename for the rendered frame",
							EnvVar: "POLARIS_OUT",
						},
						cli.StringFlag{
							Name:   "format",
							Usage:  "output image format (ppm, png, bmp, tiff)",
							EnvVar: "POLARIS_FORMAT",
						},
						cli.IntFlag{
							Name:   "resize",
							Usage:  "scale the output image to this width",
							EnvVar: "POLARIS_RESIZE",
						},
						cli.BoolFlag{
							Name:   "open",
							Usage:  "open the rendered image with the system viewer",
							EnvVar: "POLARIS_OPEN",
						},
						cli.StringFlag{
							Name:   "upload",
							Usage:  "upload the rendered image to S3 under this key",
							EnvVar: "POLARIS_UPLOAD",
						},
						cli.StringFlag{
							Name:   "s3-bucket",
							EnvVar: "POLARIS_S3_BUCKET",
						},
						cli.StringFlag{
							Name:   "s3-region",
							Value:  "us-east-1",
							EnvVar: "POLARIS_S3_REGION",
						},
						cli.StringFlag{
							Name:   "s3-endpoint",
							Usage:  "endpoint of an S3 compatible object store",
							EnvVar: "POLARIS_S3_ENDPOINT",
						},
						cli.StringFlag{
							Name:   "s3-access-key",
							EnvVar: "POLARIS_S3_ACCESS_KEY",
						},
						cli.StringFlag{
							Name:   "s3-secret-key",
							EnvVar: "POLARIS_S3_SECRET_KEY",
						},
						cli.StringFlag{
							Name:   "s3-acl",
							Usage:  "canned ACL for uploaded images (e.g. public-read)",
							EnvVar: "POLARIS_S3_ACL",
						},
					),
					Action: cmd.RenderFrame,
				},
				{
					Name:  "bench",
					Usage: "render a sequence of frames and report timings",
					Flags: append(renderFlags(),
						cli.IntFlag{
							Name:   "frames, n",
							Value:  10,
							Usage:  "number of frames to render",
							EnvVar: "POLARIS_BENCH_FRAMES",
						},
					),
					Action: cmd.RenderBench,
				},
			},
		},
		{
			Name:  "scene",
			Usage: "inspect and convert scene files",
			Subcommands: []cli.Command{
				{
					Name:      "info",
					Usage:     "display scene information",
					ArgsUsage: "[scene_file]",
					Action:    cmd.ShowSceneInfo,
				},
				{
					Name:      "dump",
					Usage:     "write scene as a JSON document",
					ArgsUsage: "[scene_file]",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "out, o",
							Usage: "output file (.json or .zip); stdout if omitted",
						},
					},
					Action: cmd.DumpScene,
				},
				{
					Name:  "pack",
					Usage: "pack JSON scene files into zip archives",
					Description: `
Parse each JSON scene file, validate it and write it to a zip archive
next to the original file. Archives can be supplied to the render commands
via the scene flag.`,
					ArgsUsage: "scene_file1.json scene_file2.json ...",
					Action:    cmd.PackScene,
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
