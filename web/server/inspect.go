package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color,omitempty"`
	Reflectivity float64                `json:"reflectivity"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// inspectPixel casts the primary ray through pixel (x, y) and describes what it hits
func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) InspectResponse {
	ray := core.NewRay(sceneObj.GetCamera(), renderer.PrimaryDirection(x, y, width, height))

	hit, ok := integrator.Cast(ray, sceneObj)
	if !ok {
		return InspectResponse{Hit: false}
	}

	normal := hit.Primitive.NormalAt(hit.Point)
	mat := hit.Primitive.GetMaterial()
	r, g, b := mat.Color.Bytes()
	geometryType, properties := extractGeometryInfo(hit.Primitive)

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float64{normal.X, normal.Y, normal.Z},
		Distance:     hit.Point.Distance(ray.Origin),
		Color:        fmt.Sprintf("#%02x%02x%02x", r, g, b),
		Reflectivity: mat.Reflectivity,
		Properties:   properties,
	}
}

// extractGeometryInfo extracts detailed geometry information with type assertions
func extractGeometryInfo(p geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch g := p.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{g.Center.X, g.Center.Y, g.Center.Z}
		properties["radius"] = g.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["coefficients"] = [3]float64{g.Coefficients.X, g.Coefficients.Y, g.Coefficients.Z}
		properties["offset"] = g.Offset
		return "plane", properties

	case *geometry.Triangle:
		properties["v0"] = [3]float64{g.V0.X, g.V0.Y, g.V0.Z}
		properties["v1"] = [3]float64{g.V1.X, g.V1.Y, g.V1.Z}
		properties["v2"] = [3]float64{g.V2.X, g.V2.Y, g.V2.Z}
		return "triangle", properties

	default:
		return "unknown", properties
	}
}

// handleInspect reports the object visible at a pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	defaults := renderer.DefaultConfig()

	sceneID := query.Get("scene")
	if sceneID == "" {
		sceneID = "default"
	}

	width, err := parseIntParam(query, "width", defaults.Width, 1, maxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", defaults.Height, 1, maxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(sceneID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, width, height, x, y))
}
