package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-ppm-raytracer/pkg/geometry"
)

// Constructor builds a built-in scene, optionally overriding its camera
type Constructor func(cameraOverrides ...geometry.CameraConfig) *Scene

var builtins = map[string]Constructor{
	"default":    NewDefaultScene,
	"glass":      NewGlassScene,
	"spheregrid": NewSphereGridScene,
	"focus":      NewFocusScene,
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named built-in scene
func New(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	constructor, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return constructor(cameraOverrides...), nil
}

// Load resolves a scene argument: paths ending in .json are read as scene
// files, anything else names a built-in scene
func Load(nameOrPath string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadFile(nameOrPath, cameraOverrides...)
	}
	return New(nameOrPath, cameraOverrides...)
}
