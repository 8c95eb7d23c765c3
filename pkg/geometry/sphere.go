package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect solves the ray/sphere quadratic and returns the nearest non-negative root's point
func (s *Sphere) Intersect(ray core.Ray) (core.Vec3, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c

	// Tangent rays fall below the threshold and count as misses
	if discriminant < core.DiscriminantEpsilon {
		return core.Vec3{}, false
	}
	if !(discriminant >= core.DiscriminantEpsilon) {
		panic(fmt.Sprintf("geometry: sphere discriminant in unexpected state: %v", discriminant))
	}

	sqrtD := math.Sqrt(discriminant)
	near := (-b - sqrtD) / (2 * a)
	far := (-b + sqrtD) / (2 * a)

	switch {
	case near >= 0:
		return ray.At(near), true
	case far >= 0:
		// Origin is inside the sphere
		return ray.At(far), true
	default:
		return core.Vec3{}, false
	}
}

// NormalAt returns the outward unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	offset := point.Subtract(s.Center)
	if math.Abs(offset.Length()-s.Radius) > core.SurfaceEpsilon {
		panic(fmt.Sprintf("geometry: point %v is not on sphere (center %v, radius %g)", point, s.Center, s.Radius))
	}
	return offset.Normalize()
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}
