package scene

import "errors"

var (
	// ErrUnknownScene is returned when no built-in scene has the requested name
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrInvalidScene is returned for scene files that cannot be turned into a scene
	ErrInvalidScene = errors.New("scene: invalid scene file")
)
