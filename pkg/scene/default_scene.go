package scene

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/material"
)

// NewDefaultScene creates a yellow ground with a diffuse sphere between two metal spheres
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene("default", "Diffuse sphere between a brushed and a rough metal sphere",
		geometry.DefaultCameraConfig(), cameraOverrides)

	// Rendered without gamma correction
	s.SamplingConfig.Gamma = 1.0

	materialGround := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	materialLeft := material.NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.3)
	materialRight := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0.1, -1), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1.2, 0.1, -1), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(1.2, 0.1, -1), 0.5, materialRight),
	)

	return s
}

// NewGlassScene creates a scene with a solid glass sphere and a hollow glass bubble
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
	}
	s := newScene("glass", "Solid glass sphere beside a hollow glass bubble", cameraConfig, cameraOverrides)

	materialGround := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	materialGlass := material.NewDielectric(1.5)
	materialGold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialGold),
		// Hollow bubble: the negative radius flips the inner surface normal
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialGlass),
	)

	return s
}

// NewFocusScene creates a row of spheres receding from a wide aperture lens focused on the middle one
func NewFocusScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(3, 1.2, 2),
		LookAt:        core.NewVec3(0, 0, -3),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          30.0,
		Aperture:      0.4,
		FocusDistance: 0.0, // Focus on LookAt
	}
	s := newScene("focus", "Depth of field across a row of spheres", cameraConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000, ground))

	colors := []core.Color{
		core.NewColor(0.7, 0.2, 0.2),
		core.NewColor(0.8, 0.6, 0.2),
		core.NewColor(0.2, 0.6, 0.3),
		core.NewColor(0.2, 0.4, 0.8),
		core.NewColor(0.5, 0.3, 0.7),
	}
	for i, color := range colors {
		z := 1 - 2*float64(i)
		var mat core.Material = material.NewLambertian(color)
		if i%2 == 1 {
			mat = material.NewMetal(color, 0.1)
		}
		s.Add(geometry.NewSphere(core.NewVec3(0, 0, z), 0.5, mat))
	}

	return s
}
