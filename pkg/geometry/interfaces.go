package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive is a surface that rays can be intersected with.
// Implementations are immutable once added to a scene and safe for concurrent use.
type Primitive interface {
	// Intersect returns the nearest point at or in front of the ray origin where the ray
	// meets the surface. A miss is reported as false, not as an error.
	Intersect(ray core.Ray) (core.Vec3, bool)

	// NormalAt returns the unit outward normal at a point on the surface.
	// It panics if the point is not on the surface.
	NormalAt(point core.Vec3) core.Vec3

	// GetMaterial returns the material assigned at construction
	GetMaterial() material.Material
}
