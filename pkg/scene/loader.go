package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/material"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

// vec3 is a JSON [x, y, z] triple
type vec3 [3]float64

// UnmarshalJSON rejects arrays that do not hold exactly three numbers
func (v *vec3) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != 3 {
		return fmt.Errorf("%w: expected a 3-element vector, got %d elements", ErrInvalidScene, len(values))
	}
	copy(v[:], values)
	return nil
}

func (v *vec3) toVec3() core.Vec3 {
	if v == nil {
		return core.Vec3{}
	}
	return core.NewVec3(v[0], v[1], v[2])
}

// sceneFile is the on-disk JSON layout of a scene
type sceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Camera      cameraFile              `json:"camera"`
	Sampling    samplingFile            `json:"sampling"`
	Background  *backgroundFile         `json:"background"`
	Materials   map[string]materialFile `json:"materials"`
	Spheres     []sphereFile            `json:"spheres"`
}

type cameraFile struct {
	Center        *vec3   `json:"center"`
	LookAt        *vec3   `json:"lookAt"`
	Up            *vec3   `json:"up"`
	Width         int     `json:"width"`
	AspectRatio   float64 `json:"aspectRatio"`
	VFov          float64 `json:"vfov"`
	Aperture      float64 `json:"aperture"`
	FocusDistance float64 `json:"focusDistance"`
}

type samplingFile struct {
	SamplesPerPixel int     `json:"samplesPerPixel"`
	MaxDepth        int     `json:"maxDepth"`
	Gamma           float64 `json:"gamma"`
	Seed            int64   `json:"seed"`
}

type backgroundFile struct {
	Top    vec3 `json:"top"`
	Bottom vec3 `json:"bottom"`
}

type materialFile struct {
	Type            string  `json:"type"` // lambertian, metal or dielectric
	Albedo          *vec3   `json:"albedo"`
	Fuzz            float64 `json:"fuzz"`
	RefractiveIndex float64 `json:"refractiveIndex"`
}

type sphereFile struct {
	Center   vec3    `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// LoadFile reads a JSON scene file. A missing name defaults to the file name.
func LoadFile(path string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: opening %s: %w", path, err)
	}
	defer file.Close()

	s, err := Parse(file, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a JSON scene. Every problem with the document is reported
// as an error wrapping ErrInvalidScene.
func Parse(r io.Reader, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	var doc sceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	cameraConfig, err := doc.Camera.config()
	if err != nil {
		return nil, err
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	if err := validateCamera(cameraConfig); err != nil {
		return nil, err
	}

	sampling, err := doc.Sampling.config()
	if err != nil {
		return nil, err
	}

	s := newScene(doc.Name, doc.Description, cameraConfig, nil)
	s.SamplingConfig = sampling

	if doc.Background != nil {
		top, err := parseColor("background top", &doc.Background.Top)
		if err != nil {
			return nil, err
		}
		bottom, err := parseColor("background bottom", &doc.Background.Bottom)
		if err != nil {
			return nil, err
		}
		s.Background = renderer.Background{Top: top, Bottom: bottom}
	}

	materials := make(map[string]core.Material, len(doc.Materials))
	for name, m := range doc.Materials {
		mat, err := m.build(name)
		if err != nil {
			return nil, err
		}
		materials[name] = mat
	}

	for i, sp := range doc.Spheres {
		mat, ok := materials[sp.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d: unknown material %q", ErrInvalidScene, i, sp.Material)
		}
		if sp.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere %d: radius must be non-zero", ErrInvalidScene, i)
		}
		s.Add(geometry.NewSphere(sp.Center.toVec3(), sp.Radius, mat))
	}

	return s, nil
}

func (c cameraFile) config() (geometry.CameraConfig, error) {
	if c.Width < 0 || c.AspectRatio < 0 || c.Aperture < 0 || c.FocusDistance < 0 {
		return geometry.CameraConfig{}, fmt.Errorf("%w: camera: negative width, aspect ratio, aperture or focus distance", ErrInvalidScene)
	}
	if c.VFov < 0 || c.VFov >= 180 {
		return geometry.CameraConfig{}, fmt.Errorf("%w: camera: vfov %v outside (0, 180)", ErrInvalidScene, c.VFov)
	}

	config := geometry.MergeCameraConfig(geometry.DefaultCameraConfig(), geometry.CameraConfig{
		Width:         c.Width,
		AspectRatio:   c.AspectRatio,
		VFov:          c.VFov,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	})

	// Explicit vectors win even when they are the origin
	if c.Center != nil {
		config.Center = c.Center.toVec3()
	}
	if c.LookAt != nil {
		config.LookAt = c.LookAt.toVec3()
	}
	if c.Up != nil {
		config.Up = c.Up.toVec3()
	}

	// A placed camera without an explicit focus distance focuses on LookAt
	if c.FocusDistance == 0 && (c.Center != nil || c.LookAt != nil) {
		config.FocusDistance = 0
	}
	return config, nil
}

// validateCamera rejects placements that leave the view basis undefined
func validateCamera(c geometry.CameraConfig) error {
	view := c.Center.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: camera: center and lookAt coincide", ErrInvalidScene)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: camera: up is parallel to the view direction", ErrInvalidScene)
	}
	return nil
}

func (s samplingFile) config() (renderer.SamplingConfig, error) {
	if s.SamplesPerPixel < 0 || s.MaxDepth < 0 || s.Gamma < 0 {
		return renderer.SamplingConfig{}, fmt.Errorf("%w: sampling: negative samplesPerPixel, maxDepth or gamma", ErrInvalidScene)
	}
	return renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{
		SamplesPerPixel: s.SamplesPerPixel,
		MaxDepth:        s.MaxDepth,
		Gamma:           s.Gamma,
		Seed:            s.Seed,
	}), nil
}

func (m materialFile) build(name string) (core.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian":
		albedo, err := parseColor("material "+name+" albedo", m.Albedo)
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil

	case "metal":
		albedo, err := parseColor("material "+name+" albedo", m.Albedo)
		if err != nil {
			return nil, err
		}
		if m.Fuzz < 0 {
			return nil, fmt.Errorf("%w: material %s: negative fuzz %v", ErrInvalidScene, name, m.Fuzz)
		}
		return material.NewMetal(albedo, m.Fuzz), nil

	case "dielectric":
		if m.RefractiveIndex < 1 {
			return nil, fmt.Errorf("%w: material %s: refractive index %v below 1", ErrInvalidScene, name, m.RefractiveIndex)
		}
		return material.NewDielectric(m.RefractiveIndex), nil

	default:
		return nil, fmt.Errorf("%w: material %s: unknown type %q", ErrInvalidScene, name, m.Type)
	}
}

// parseColor checks channel ranges before core.NewColor, which panics on bad input
func parseColor(what string, v *vec3) (core.Color, error) {
	if v == nil {
		return core.Color{}, fmt.Errorf("%w: %s is required", ErrInvalidScene, what)
	}
	for _, channel := range v {
		if channel < 0 || channel > 1 {
			return core.Color{}, fmt.Errorf("%w: %s %v has a channel outside [0, 1]", ErrInvalidScene, what, *v)
		}
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}
