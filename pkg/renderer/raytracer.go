package renderer

import (
	"math/rand"
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/log"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Gamma           float64 // Output gamma, 1 disables correction
	Seed            int64   // Seed for the random stream
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Gamma:           2.0,
		Seed:            42,
	}
}

// MergeSamplingConfig overlays the non-zero fields of override onto base
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Gamma > 0 {
		result.Gamma = override.Gamma
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetBackground() Background
	GetWorld() core.Shape
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
	random *rand.Rand
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := DefaultSamplingConfig()
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		random: rand.New(rand.NewSource(config.Seed)),
		logger: log.New("renderer"),
	}
}

// SetSamplingConfig updates the sampling configuration and reseeds the random stream
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = MergeSamplingConfig(DefaultSamplingConfig(), config)
	rt.random = rand.New(rand.NewSource(rt.config.Seed))
}

// SetLogger replaces the progress logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// samplePixel averages SamplesPerPixel jittered estimates for pixel (i, j),
// where j counts scanlines from the bottom of the image
func (rt *Raytracer) samplePixel(camera *geometry.Camera, i, j int, stats *RenderStats) core.Color {
	world := rt.scene.GetWorld()
	background := rt.scene.GetBackground()

	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(i) + rt.random.Float64()) / float64(rt.width)
		t := (float64(j) + rt.random.Float64()) / float64(rt.height)

		ray := camera.GetRay(s, t, rt.random)
		path := TracePath(ray, world, background, rt.config.MaxDepth, rt.random)
		stats.addPath(path)

		colorAccum = colorAccum.Add(path.Color.Vec3())
	}

	return core.ColorFromVec3(colorAccum.Divide(float64(rt.config.SamplesPerPixel)))
}

// RenderPass renders every pixel with multi-sampling and returns the image
func (rt *Raytracer) RenderPass() (*Image, RenderStats) {
	start := time.Now()
	img := NewImage(rt.width, rt.height)
	camera := rt.scene.GetCamera()
	stats := RenderStats{
		Width:           rt.width,
		Height:          rt.height,
		TotalPixels:     rt.width * rt.height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
	}

	rt.logger.Infof("rendering %dx%d, %d samples per pixel, max depth %d",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	for j := rt.height - 1; j >= 0; j-- {
		rt.logger.Debugf("scanlines remaining: %d", j+1)

		for i := 0; i < rt.width; i++ {
			pixelColor := rt.samplePixel(camera, i, j, &stats)
			img.Set(i, rt.height-1-j, pixelColor.GammaCorrect(rt.config.Gamma))
		}
	}

	stats.RenderTime = time.Since(start)
	rt.logger.Infof("render finished in %s", stats.RenderTime)
	return img, stats
}
