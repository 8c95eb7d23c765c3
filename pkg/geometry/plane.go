package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane in implicit form: Coefficients·P = Offset.
// Coefficients is normal-like but not necessarily unit length.
type Plane struct {
	Coefficients core.Vec3
	Offset       float64
	Point        core.Vec3 // A reference point on the plane
	Material     material.Material
}

// NewPlaneFromPoints creates the plane through three points.
// The normal follows the right-hand rule over (b-a, c-a).
func NewPlaneFromPoints(a, b, c core.Vec3, mat material.Material) *Plane {
	coefficients := b.Subtract(a).Cross(c.Subtract(a))
	return &Plane{
		Coefficients: coefficients,
		Offset:       coefficients.Dot(a),
		Point:        a,
		Material:     mat,
	}
}

// NewPlane creates a plane through point with the given normal
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Coefficients: normal,
		Offset:       normal.Dot(point),
		Point:        point,
		Material:     mat,
	}
}

// Intersect returns where the ray meets the plane.
// A ray lying in the plane hits at its own origin.
func (p *Plane) Intersect(ray core.Ray) (core.Vec3, bool) {
	denominator := ray.Direction.Dot(p.Coefficients)

	if math.Abs(denominator) < core.ParallelEpsilon {
		if p.contains(ray.Origin) {
			return ray.Origin, true
		}
		return core.Vec3{}, false
	}

	// n = (point_on_plane - origin)·coefficients / (direction·coefficients)
	n := p.Point.Subtract(ray.Origin).Dot(p.Coefficients) / denominator
	if n < 0 {
		return core.Vec3{}, false
	}

	return ray.At(n), true
}

// NormalAt returns the plane's unit normal
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	if !p.contains(point) {
		panic(fmt.Sprintf("geometry: point %v is not on plane %v·P = %g", point, p.Coefficients, p.Offset))
	}
	return p.Coefficients.Normalize()
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() material.Material {
	return p.Material
}

// contains tests the plane equation, scaled so the tolerance is a distance
func (p *Plane) contains(point core.Vec3) bool {
	scale := p.Coefficients.Length()
	if scale == 0 {
		return false
	}
	return math.Abs(p.Coefficients.Dot(point)-p.Offset)/scale < core.SurfaceEpsilon
}
