package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-ppm-raytracer/pkg/log"
)

var logger = log.New("scene")

// SceneInfo describes a scene available for rendering
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // Scene file path (file type only)
}

// ListBuiltinScenes returns metadata for every built-in scene
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, name := range Names() {
		s := builtins[name]()
		scenes = append(scenes, SceneInfo{
			Name:        name,
			Description: s.Description,
			Type:        "builtin",
		})
	}
	return scenes
}

// ListSceneFiles scans dir for *.json scene files and returns their
// metadata sorted by name. A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scene: scanning %s: %w", dir, err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := readSceneInfo(filePath)
		if err != nil {
			// Keep listing the rest
			logger.Warningf("skipping %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}
	return append(ListBuiltinScenes(), files...), nil
}

// readSceneInfo reads only the name and description of a scene file
func readSceneInfo(filePath string) (SceneInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SceneInfo{}, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return SceneInfo{}, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	name := header.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}
	return SceneInfo{
		Name:        name,
		Description: header.Description,
		Type:        "file",
		FilePath:    filePath,
	}, nil
}
