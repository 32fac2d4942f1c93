package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

func TestNames(t *testing.T) {
	expected := []string{"default", "focus", "glass", "spheregrid"}
	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}
}

func TestNew_BuiltinScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.World.Len() == 0 {
				t.Error("Expected scene to contain shapes")
			}
			if s.Description == "" {
				t.Error("Expected scene description")
			}

			// Every scene renders a tiny image without panicking
			s.ApplyCameraOverrides(geometry.CameraConfig{Width: 4})
			width, height := s.Size()
			rt := renderer.NewRaytracer(s, width, height)
			rt.SetSamplingConfig(renderer.SamplingConfig{SamplesPerPixel: 2, MaxDepth: 5})
			img, stats := rt.RenderPass()
			if len(img.Pixels) != width*height || stats.TotalSamples != 2*width*height {
				t.Errorf("Unexpected render size: %d pixels, %+v", len(img.Pixels), stats)
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("cornell")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestDefaultScene_Layout(t *testing.T) {
	s := NewDefaultScene()

	if width, height := s.Size(); width != 400 || height != 225 {
		t.Errorf("Expected 400x225, got %dx%d", width, height)
	}
	if s.SamplingConfig.Gamma != 1.0 {
		t.Errorf("Expected default scene to render without gamma, got %f", s.SamplingConfig.Gamma)
	}
	if s.World.Len() != 4 {
		t.Fatalf("Expected 4 spheres, got %d", s.World.Len())
	}

	// A ray straight ahead hits the center sphere
	hit, isHit := s.World.Hit(core.NewRay(core.NewVec3(0, 0.1, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit || math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected center sphere at t=0.5, got hit=%t", isHit)
	}
}

func TestGlassScene_HollowSphere(t *testing.T) {
	s := NewGlassScene()

	// From outside the bubble the ray crosses the outer shell, then the inverted inner shell
	ray := core.NewRay(core.NewVec3(-1, 0, 1), core.NewVec3(0, 0, -1))
	outer, isHit := s.World.Hit(ray, 0.001, math.Inf(1))
	if !isHit || !outer.FrontFace {
		t.Fatalf("Expected front face hit on outer shell, got hit=%t", isHit)
	}

	inner, isHit := s.World.Hit(ray, outer.T+0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on inner shell")
	}
	if math.Abs(inner.T-1.55) > 1e-9 || inner.FrontFace {
		t.Errorf("Expected back face of inverted shell at t=1.55, got t=%f front=%t", inner.T, inner.FrontFace)
	}
	if inner.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("Normal %v should oppose the ray", inner.Normal)
	}
}

func TestApplyCameraOverrides(t *testing.T) {
	s := NewFocusScene()
	aspect := s.CameraConfig.AspectRatio

	s.ApplyCameraOverrides(geometry.CameraConfig{Width: 160})
	if width, height := s.Size(); width != 160 || height != 90 {
		t.Errorf("Expected 160x90, got %dx%d", width, height)
	}
	if s.CameraConfig.AspectRatio != aspect || s.CameraConfig.Aperture != 0.4 {
		t.Errorf("Expected other camera settings to survive, got %+v", s.CameraConfig)
	}
}

func TestOklchToRGB(t *testing.T) {
	gray := oklchToRGB(0.65, 0, 0)
	if math.Abs(gray.R()-gray.G()) > 1e-6 || math.Abs(gray.G()-gray.B()) > 1e-6 {
		t.Errorf("Zero chroma should be gray, got %v", gray)
	}

	// Extreme chroma is clamped into gamut instead of panicking
	vivid := oklchToRGB(0.9, 0.4, 140)
	for _, channel := range []float64{vivid.R(), vivid.G(), vivid.B()} {
		if channel < 0 || channel > 1 {
			t.Errorf("Channel %f out of range", channel)
		}
	}
}
