package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
	}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return t
}

// Intersect tests the ray against the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (core.Vec3, bool) {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in (or parallel to) the triangle's plane
	if a > -epsilon && a < epsilon {
		return core.Vec3{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.Vec3{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Vec3{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < 0 {
		return core.Vec3{}, false
	}

	return ray.At(tParam), true
}

// NormalAt returns the triangle's constant normal
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	if math.Abs(point.Subtract(t.V0).Dot(t.normal)) > core.SurfaceEpsilon {
		panic(fmt.Sprintf("geometry: point %v is not on triangle (%v, %v, %v)", point, t.V0, t.V1, t.V2))
	}
	return t.normal
}

// GetMaterial returns the triangle's material
func (t *Triangle) GetMaterial() material.Material {
	return t.Material
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
