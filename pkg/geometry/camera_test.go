package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

func TestSimpleCamera_Viewport(t *testing.T) {
	camera := NewSimpleCamera(90, 2.0)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, random)
			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Pinhole camera should not move the origin, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_Forward(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center:      core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        20,
	})

	expected := core.NewVec3(-3, -3, -3).Normalize()
	if camera.Forward().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, camera.Forward())
	}

	// Auto focus places the image center on LookAt
	center := camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(1)))
	if center.At(1).Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected center ray to reach LookAt at t=1, got %v", center.At(1))
	}
}

func TestCamera_DepthOfField(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         100,
		AspectRatio:   1.0,
		VFov:          40,
		Aperture:      0.5,
		FocusDistance: 4,
	}
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	if camera.LensRadius() != 0.25 {
		t.Fatalf("Expected lens radius 0.25, got %f", camera.LensRadius())
	}

	focusPoint := core.NewVec3(0, 0, -4)
	moved := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, random)

		if ray.Origin.Length() >= 0.25 {
			t.Fatalf("Lens offset %v exceeds lens radius", ray.Origin)
		}
		if ray.Origin.Z != 0 {
			t.Fatalf("Lens offset should lie in the lens plane, got %v", ray.Origin)
		}
		if ray.Origin.Length() > 0 {
			moved = true
		}

		// Every ray through the image center converges on the focus plane
		if ray.At(1).Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Expected ray to pass through %v, got %v", focusPoint, ray.At(1))
		}
	}
	if !moved {
		t.Error("Expected aperture to jitter ray origins")
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 64, VFov: 30})

	if merged.Width != 64 || merged.VFov != 30 {
		t.Errorf("Expected overrides to apply, got width=%d vfov=%f", merged.Width, merged.VFov)
	}
	if merged.AspectRatio != base.AspectRatio || merged.LookAt != base.LookAt {
		t.Errorf("Expected zero-valued overrides to keep base values, got %+v", merged)
	}
}

func TestCameraConfig_ImageHeight(t *testing.T) {
	tests := []struct {
		width    int
		aspect   float64
		expected int
	}{
		{400, 16.0 / 9.0, 225},
		{2, 1.0, 2},
		{1, 4.0, 1},
	}

	for _, tt := range tests {
		config := CameraConfig{Width: tt.width, AspectRatio: tt.aspect}
		if got := config.ImageHeight(); got != tt.expected {
			t.Errorf("ImageHeight(%d, %f) = %d, want %d", tt.width, tt.aspect, got, tt.expected)
		}
	}
}
