package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/log"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
)

// errSceneNotFound marks scene lookups that should answer 404
var errSceneNotFound = errors.New("server: scene not found")

// Server handles web requests for the raytracer
type Server struct {
	port     int
	sceneDir string // Directory searched for JSON scene files
	logger   log.Logger
	renders  atomic.Uint64 // Render IDs for log tagging
}

// NewServer creates a new web server
func NewServer(port int, sceneDir string) *Server {
	return &Server{
		port:     port,
		sceneDir: sceneDir,
		logger:   log.New("server"),
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start serves the API until the listener fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Noticef("starting web server on http://localhost%s", addr)
	return srv.ListenAndServe()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the names of built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		s.logger.Errorf("listing scenes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list scenes")
		return
	}

	names := make([]string, 0, len(scenes))
	for _, info := range scenes {
		names = append(names, info.Name)
	}
	writeJSON(w, http.StatusOK, names)
}

// loadScene resolves a built-in scene name or the name of a scene file in sceneDir
func (s *Server) loadScene(name string, cameraOverrides geometry.CameraConfig) (*scene.Scene, error) {
	sceneObj, err := scene.New(name, cameraOverrides)
	if err == nil {
		return sceneObj, nil
	}
	if !errors.Is(err, scene.ErrUnknownScene) {
		return nil, err
	}

	files, err := scene.ListSceneFiles(s.sceneDir)
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.Name == name {
			return scene.LoadFile(info.FilePath, cameraOverrides)
		}
	}

	// Files with an unreadable header are left out of the listing but still
	// resolve by file name, so their parse error reaches the client
	if name == filepath.Base(name) {
		path := filepath.Join(s.sceneDir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return scene.LoadFile(path, cameraOverrides)
		}
	}
	return nil, fmt.Errorf("%w: %q", errSceneNotFound, name)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseSeedParam parses a 64-bit seed, 0 when absent
func parseSeedParam(values url.Values) (int64, error) {
	value := values.Get("seed")
	if value == "" {
		return 0, nil
	}
	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed: %s", value)
	}
	return seed, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// sceneErrorStatus maps scene lookup failures to HTTP status codes
func sceneErrorStatus(err error) int {
	switch {
	case errors.Is(err, errSceneNotFound):
		return http.StatusNotFound
	case errors.Is(err, scene.ErrInvalidScene):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
