package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a ray. depth bounds the number of
	// further reflection bounces the integrator may trace.
	RayColor(ray core.Ray, scene *scene.Scene, depth int) core.Color
}
