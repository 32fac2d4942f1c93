package cmd

import (
	"github.com/urfave/cli"
)

// NewApp builds the command line application
func NewApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render spheres with stochastic ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "v",
			Usage:  "enable verbose logging",
			EnvVar: "RAYTRACER_VERBOSE",
		},
		cli.BoolFlag{
			Name:   "vv",
			Usage:  "enable even more verbose logging",
			EnvVar: "RAYTRACER_DEBUG",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a plain PPM image",
			Description: `
Render a built-in scene, or a JSON scene file, with a single pass of
multi-sampled path tracing. The image is written as a plain-text P3 pixmap,
to stdout unless --out names a file, and render statistics go to the log.

Sampling flags left at zero keep the values recommended by the scene. When
--s3-bucket is set the image is also uploaded to an S3-compatible bucket.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "default",
					Usage:  "built-in scene name or path to a .json scene file",
					EnvVar: "RAYTRACER_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Usage:  "image width in pixels, height follows the scene aspect ratio",
					EnvVar: "RAYTRACER_WIDTH",
				},
				cli.IntFlag{
					Name:   "spp",
					Usage:  "samples per pixel",
					EnvVar: "RAYTRACER_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Usage:  "maximum number of bounces per path",
					EnvVar: "RAYTRACER_DEPTH",
				},
				cli.Int64Flag{
					Name:   "seed",
					Usage:  "seed for the random stream",
					EnvVar: "RAYTRACER_SEED",
				},
				cli.Float64Flag{
					Name:   "gamma",
					Usage:  "output gamma, 1 disables correction",
					EnvVar: "RAYTRACER_GAMMA",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "-",
					Usage:  "output file, - for stdout",
					EnvVar: "RAYTRACER_OUT",
				},
				cli.StringFlag{
					Name:   "s3-bucket",
					Usage:  "upload the image to this bucket",
					EnvVar: "RAYTRACER_S3_BUCKET",
				},
				cli.StringFlag{
					Name:   "s3-key",
					Usage:  "object key, defaults to renders/<scene>/render_<timestamp>.ppm",
					EnvVar: "RAYTRACER_S3_KEY",
				},
				cli.StringFlag{
					Name:   "s3-endpoint",
					Usage:  "custom endpoint for S3-compatible stores",
					EnvVar: "RAYTRACER_S3_ENDPOINT",
				},
				cli.StringFlag{
					Name:   "s3-region",
					Value:  "us-east-1",
					Usage:  "bucket region",
					EnvVar: "RAYTRACER_S3_REGION",
				},
				cli.StringFlag{
					Name:   "s3-access-key",
					Usage:  "access key id",
					EnvVar: "RAYTRACER_S3_ACCESS_KEY",
				},
				cli.StringFlag{
					Name:   "s3-secret-key",
					Usage:  "secret access key",
					EnvVar: "RAYTRACER_S3_SECRET_KEY",
				},
			},
			Action: RenderScene,
		},
		{
			Name:  "list-scenes",
			Usage: "list built-in scenes and the scene files in a directory",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "dir, d",
					Value:  "scenes",
					Usage:  "directory scanned for .json scene files",
					EnvVar: "RAYTRACER_SCENE_DIR",
				},
			},
			Action: ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "port, p",
					Value:  8080,
					Usage:  "port to listen on",
					EnvVar: "RAYTRACER_PORT",
				},
				cli.StringFlag{
					Name:   "dir, d",
					Value:  "scenes",
					Usage:  "directory scanned for .json scene files",
					EnvVar: "RAYTRACER_SCENE_DIR",
				},
			},
			Action: Serve,
		},
	}

	return app
}
