package scene

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Description    string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.ShapeList // Objects in the scene, searched linearly
	Background     renderer.Background
	SamplingConfig renderer.SamplingConfig // Recommended settings, merged under user overrides
}

// newScene creates an empty scene with a camera built from the merged config
func newScene(name, description string, cameraConfig geometry.CameraConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Name:           name,
		Description:    description,
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewShapeList(),
		Background:     renderer.DefaultBackground(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *geometry.Camera { return s.Camera }

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() renderer.Background { return s.Background }

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Shape { return s.World }

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) {
	s.World.Add(shapes...)
}

// Size returns the image dimensions implied by the camera config
func (s *Scene) Size() (width, height int) {
	return s.CameraConfig.Width, s.CameraConfig.ImageHeight()
}

// ApplyCameraOverrides rebuilds the camera with override merged onto the current config
func (s *Scene) ApplyCameraOverrides(override geometry.CameraConfig) {
	s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, override)
	s.Camera = geometry.NewCamera(s.CameraConfig)
}
