package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// HitRecord is the nearest intersection of a ray with the scene.
// Primitive points into the scene and is only valid while the scene is.
type HitRecord struct {
	Point     core.Vec3
	Primitive geometry.Primitive
}

// Cast finds the nearest primitive hit by the ray with a linear scan.
// Hits within core.MinHitDistance of the origin are ignored so rays leaving a
// surface do not re-hit it.
func Cast(ray core.Ray, sc *scene.Scene) (HitRecord, bool) {
	var closest HitRecord
	closestSoFar := math.Inf(1)
	hitAnything := false

	for _, primitive := range sc.GetPrimitives() {
		point, isHit := primitive.Intersect(ray)
		if !isHit {
			continue
		}

		distance := point.Distance(ray.Origin)
		if distance > core.MinHitDistance && distance < closestSoFar {
			closestSoFar = distance
			closest = HitRecord{Point: point, Primitive: primitive}
			hitAnything = true
		}
	}

	return closest, hitAnything
}
