package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client. Zero fields
// keep the scene's recommended values.
type RenderRequest struct {
	Scene           string
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Gamma           float64
	Seed            int64
}

// handleRender renders a scene synchronously and answers with a plain PPM image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	sceneObj, err := s.loadScene(req.Scene, geometry.CameraConfig{Width: req.Width})
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	body, stats := s.render(renderID, sceneObj, req)

	w.Header().Set("Content-Type", "image/x-portable-pixmap")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time", stats.RenderTime.String())
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// render runs a single-threaded pass with its own raytracer and returns the PPM bytes
func (s *Server) render(renderID string, sceneObj *scene.Scene, req *RenderRequest) ([]byte, renderer.RenderStats) {
	width, height := sceneObj.Size()
	config := renderer.MergeSamplingConfig(sceneObj.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		Gamma:           req.Gamma,
		Seed:            req.Seed,
	})

	rt := renderer.NewRaytracer(sceneObj, width, height)
	rt.SetSamplingConfig(config)
	rt.SetLogger(newRenderLogger(renderID, s.logger))

	img, stats := rt.RenderPass()

	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail
	_ = renderer.WritePPM(&buf, img)

	s.logger.Infof("%s: %s %dx%d, %d spp in %s", renderID, sceneObj.Name, width, height,
		config.SamplesPerPixel, stats.RenderTime)
	return buf.Bytes(), stats
}

// parseRenderRequest parses and validates the query parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", 0, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", 0, 1, 1000); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(values, "gamma", 0, 0.1, 10); err != nil {
		return nil, err
	}
	if req.Seed, err = parseSeedParam(values); err != nil {
		return nil, err
	}

	return req, nil
}
