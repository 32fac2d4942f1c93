package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/log"
)

const fileScene = `{
  "name": "lonely",
  "description": "One matte sphere",
  "camera": {"width": 6, "aspectRatio": 1.5},
  "materials": {"matte": {"type": "lambertian", "albedo": [0.5, 0.5, 0.5]}},
  "spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "matte"}]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"lonely.json": fileScene,
		"broken.json": `{"name": "broken", "materials": {"m": {"type": "plastic"}}}`,
		"garbled.json": `{"name": "garbled", "spheres": [`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return NewServer(0, dir)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/scenes")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var names []string
	if err := json.NewDecoder(rec.Body).Decode(&names); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	found := map[string]bool{}
	for _, name := range names {
		found[name] = true
	}
	for _, want := range []string{"default", "glass", "spheregrid", "focus", "lonely"} {
		if !found[want] {
			t.Errorf("Expected %q in scene list %v", want, names)
		}
	}
}

func TestHandleRender(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/render?scene=default&width=8&spp=1&depth=2&seed=3")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/x-portable-pixmap" {
		t.Errorf("Unexpected content type %q", ct)
	}

	lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
	if len(lines) != 3+8*4 {
		t.Fatalf("Expected header and 32 pixel lines, got %d lines", len(lines))
	}
	if lines[0] != "P3" || lines[1] != "8 4" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}

	// Same parameters, same image
	again := get(t, s, "/api/render?scene=default&width=8&spp=1&depth=2&seed=3")
	if !bytes.Equal(rec.Body.Bytes(), again.Body.Bytes()) {
		t.Error("Expected identical renders for identical requests")
	}
}

func TestHandleRender_SceneFile(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=lonely&spp=1&depth=1")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "P3\n6 4\n255\n") {
		t.Errorf("Unexpected header in %q", rec.Body.String()[:20])
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"width not a number", "/api/render?width=wide", http.StatusBadRequest},
		{"width too large", "/api/render?width=5000", http.StatusBadRequest},
		{"zero samples", "/api/render?spp=0", http.StatusBadRequest},
		{"negative depth", "/api/render?depth=-1", http.StatusBadRequest},
		{"bad seed", "/api/render?seed=lucky", http.StatusBadRequest},
		{"bad gamma", "/api/render?gamma=0", http.StatusBadRequest},
		{"unknown scene", "/api/render?scene=cornell", http.StatusNotFound},
		{"invalid scene file", "/api/render?scene=broken", http.StatusUnprocessableEntity},
		{"malformed scene file", "/api/render?scene=garbled", http.StatusUnprocessableEntity},
		{"path outside scene dir", "/api/render?scene=../garbled", http.StatusNotFound},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer(t)

	// 16x9 default scene: the middle of the image shows the diffuse center sphere
	rec := get(t, s, "/api/inspect?scene=default&width=16&x=8&y=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var hit InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&hit); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !hit.Hit || hit.MaterialType != "lambertian" || hit.GeometryType != "sphere" || !hit.FrontFace {
		t.Errorf("Expected front face of a lambertian sphere, got %+v", hit)
	}

	// Top middle looks over the spheres into the sky
	rec = get(t, s, "/api/inspect?scene=default&width=16&x=8&y=0")
	var miss InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&miss); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if miss.Hit {
		t.Errorf("Expected sky, got %+v", miss)
	}

	for _, target := range []string{
		"/api/inspect?scene=default&width=16&x=16&y=0",
		"/api/inspect?scene=default&width=16&y=0",
	} {
		if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestRenderLogger_TagsMessages(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	log.SetLevel(log.Debug)
	defer func() {
		log.SetSink(os.Stderr)
		log.SetLevel(log.Notice)
	}()

	logger := newRenderLogger("render-7", log.New("server"))
	logger.Debugf("scanlines remaining: %d", 3)
	logger.Infof("done")

	output := buf.String()
	if !strings.Contains(output, "render-7: scanlines remaining: 3") || !strings.Contains(output, "render-7: done") {
		t.Errorf("Expected tagged messages, got %q", output)
	}
}
