package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Vec is a JSON [x, y, z] triple
type Vec [3]float64

func (v Vec) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func (v Vec) toColor() core.Color {
	return core.NewColor(v[0], v[1], v[2])
}

// MaterialDesc describes a surface
type MaterialDesc struct {
	Color        Vec     `json:"color"`
	Reflectivity float64 `json:"reflectivity,omitempty"`
}

// SphereDesc describes a sphere
type SphereDesc struct {
	Center   Vec          `json:"center"`
	Radius   float64      `json:"radius"`
	Material MaterialDesc `json:"material"`
}

// PlaneDesc describes the plane through three points; the normal follows (b-a)×(c-a)
type PlaneDesc struct {
	Points   [3]Vec       `json:"points"`
	Material MaterialDesc `json:"material"`
}

// TriangleDesc describes a triangle by its vertices
type TriangleDesc struct {
	Vertices [3]Vec       `json:"vertices"`
	Material MaterialDesc `json:"material"`
}

// LightDesc describes a disc light
type LightDesc struct {
	Position  Vec     `json:"position"`
	Intensity Vec     `json:"intensity"`
	Radius    float64 `json:"radius"`
}

// SceneFile is the on-disk scene description
type SceneFile struct {
	Camera    Vec            `json:"camera"`
	Spheres   []SphereDesc   `json:"spheres,omitempty"`
	Planes    []PlaneDesc    `json:"planes,omitempty"`
	Triangles []TriangleDesc `json:"triangles,omitempty"`
	Lights    []LightDesc    `json:"lights,omitempty"`
}

// LoadScene reads and builds a scene from a JSON file
func LoadScene(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	sc, err := ParseScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScene decodes a JSON scene description and builds the scene.
// Unknown fields are rejected.
func ParseScene(r io.Reader) (*scene.Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var desc SceneFile
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return desc.Build()
}

// SaveScene writes a scene description as indented JSON
func SaveScene(path string, desc *SceneFile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(desc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Build validates the description and assembles the scene
func (desc *SceneFile) Build() (*scene.Scene, error) {
	sc := scene.New(desc.Camera.toVec3())

	for i, s := range desc.Spheres {
		mat, err := s.Material.build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if s.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, s.Radius)
		}
		sc.AddSphere(s.Center.toVec3(), s.Radius, mat)
	}

	for i, p := range desc.Planes {
		mat, err := p.Material.build()
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		a, b, c := p.Points[0].toVec3(), p.Points[1].toVec3(), p.Points[2].toVec3()
		if collinear(a, b, c) {
			return nil, fmt.Errorf("plane %d: %w", i, errCollinear)
		}
		sc.AddPlane(a, b, c, mat)
	}

	for i, t := range desc.Triangles {
		mat, err := t.Material.build()
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		v0, v1, v2 := t.Vertices[0].toVec3(), t.Vertices[1].toVec3(), t.Vertices[2].toVec3()
		if collinear(v0, v1, v2) {
			return nil, fmt.Errorf("triangle %d: %w", i, errCollinear)
		}
		sc.AddTriangle(v0, v1, v2, mat)
	}

	for i, l := range desc.Lights {
		light := lights.NewDiscLight(l.Position.toVec3(), l.Intensity.toColor(), l.Radius)
		if err := light.Validate(); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		sc.AddLight(light)
	}

	return sc, nil
}

var errCollinear = errors.New("points are collinear")

func (m MaterialDesc) build() (material.Material, error) {
	mat := material.NewMaterial(m.Color.toColor(), m.Reflectivity)
	if err := mat.Validate(); err != nil {
		return material.Material{}, err
	}
	return mat, nil
}

func collinear(a, b, c core.Vec3) bool {
	return b.Subtract(a).Cross(c.Subtract(a)).LengthSquared() == 0
}
