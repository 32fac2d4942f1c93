package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/publish"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// uploader stores a rendered image under a key
type uploader interface {
	Upload(ctx context.Context, key string, data []byte) error
}

// newUploader is replaced in tests
var newUploader = func(cfg publish.Config) (uploader, error) {
	return publish.NewUploader(cfg)
}

// Render a scene to a PPM image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if err := checkNonNegative(ctx, "width", "spp", "depth"); err != nil {
		return err
	}
	if ctx.Float64("gamma") < 0 {
		return fmt.Errorf("%w: gamma must not be negative", ErrInvalidFlag)
	}

	sceneObj, err := scene.Load(ctx.String("scene"), geometry.CameraConfig{Width: ctx.Int("width")})
	if err != nil {
		return err
	}

	config := renderer.MergeSamplingConfig(sceneObj.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Gamma:           ctx.Float64("gamma"),
		Seed:            ctx.Int64("seed"),
	})

	width, height := sceneObj.Size()
	logger.Noticef("rendering scene %q at %dx%d", sceneObj.Name, width, height)

	rt := renderer.NewRaytracer(sceneObj, width, height)
	rt.SetSamplingConfig(config)
	img, stats := rt.RenderPass()

	var buf bytes.Buffer
	if err := renderer.WritePPM(&buf, img); err != nil {
		return err
	}
	if err := writeOutput(ctx.String("out"), buf.Bytes(), ctx.App.Writer); err != nil {
		return err
	}

	displayRenderStats(stats)

	if ctx.String("s3-bucket") != "" {
		return uploadRender(ctx, sceneObj.Name, buf.Bytes())
	}
	return nil
}

func checkNonNegative(ctx *cli.Context, names ...string) error {
	for _, name := range names {
		if ctx.Int(name) < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidFlag, name, ctx.Int(name))
		}
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is "-"
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "-" || path == "" {
		_, err := stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Noticef("image saved to %s", path)
	return nil
}

func uploadRender(ctx *cli.Context, sceneName string, data []byte) error {
	up, err := newUploader(publish.Config{
		Endpoint:  ctx.String("s3-endpoint"),
		Region:    ctx.String("s3-region"),
		Bucket:    ctx.String("s3-bucket"),
		AccessKey: ctx.String("s3-access-key"),
		SecretKey: ctx.String("s3-secret-key"),
	})
	if err != nil {
		return err
	}

	key := ctx.String("s3-key")
	if key == "" {
		key = publish.ObjectKey(sceneName, time.Now())
	}
	return up.Upload(context.Background(), key, data)
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", stats.Table())
}
