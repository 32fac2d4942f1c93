package server

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/material"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat core.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecJSON(m.Albedo.Vec3())
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecJSON(m.Albedo.Vec3())
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape core.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
		properties["hollow"] = geom.Radius < 0
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts an unjittered ray through the center of pixel (x, y),
// counted from the top-left, and returns the nearest hit and the shape it belongs to
func inspectPixel(sceneObj *scene.Scene, x, y int) (*core.HitRecord, core.Shape) {
	width, height := sceneObj.Size()
	s := (float64(x) + 0.5) / float64(width)
	t := (float64(height-1-y) + 0.5) / float64(height)

	// Fixed seed keeps the lens sample stable between requests
	ray := sceneObj.Camera.GetRay(s, t, rand.New(rand.NewSource(0)))

	hit, shape, _ := sceneObj.World.HitShape(ray, renderer.ShadowAcneEpsilon, math.Inf(1))
	return hit, shape
}

// handleInspect reports the surface seen through a pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	sceneName := values.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := parseIntParam(values, "width", 0, 1, 2000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.loadScene(sceneName, geometry.CameraConfig{Width: width})
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	imageWidth, imageHeight := sceneObj.Size()
	pixelX, err := parseIntParam(values, "x", -1, 0, imageWidth-1)
	if err != nil || pixelX < 0 {
		writeError(w, http.StatusBadRequest, "x must be a pixel column inside the image")
		return
	}
	pixelY, err := parseIntParam(values, "y", -1, 0, imageHeight-1)
	if err != nil || pixelY < 0 {
		writeError(w, http.StatusBadRequest, "y must be a pixel row inside the image")
		return
	}

	hit, shape := inspectPixel(sceneObj, pixelX, pixelY)
	if hit == nil {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(hit.Material)
	geometryType, geometryProps := extractGeometryInfo(shape)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecJSON(hit.Point),
		Normal:       vecJSON(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
