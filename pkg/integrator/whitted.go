package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultAmbient is the constant light added to every visible surface
var DefaultAmbient = core.NewColor(0.2, 0.2, 0.2)

// WhittedIntegrator shades with an ambient term, soft-shadowed direct light from
// every disc light and a mirror bounce weighted by the surface reflectivity.
// It holds no per-ray state and is safe for concurrent use.
type WhittedIntegrator struct {
	ambient core.Color
}

// NewWhittedIntegrator creates a Whitted integrator with the default ambient term
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{ambient: DefaultAmbient}
}

// NewWhittedIntegratorWithAmbient creates a Whitted integrator with a custom ambient term
func NewWhittedIntegratorWithAmbient(ambient core.Color) *WhittedIntegrator {
	return &WhittedIntegrator{ambient: ambient}
}

// RayColor computes the color for a ray. The direct and ambient terms are always
// evaluated at the hit; depth only limits further reflection bounces.
func (w *WhittedIntegrator) RayColor(ray core.Ray, sc *scene.Scene, depth int) core.Color {
	hit, isHit := Cast(ray, sc)
	if !isHit {
		return core.Black
	}

	normal := hit.Primitive.NormalAt(hit.Point)
	mat := hit.Primitive.GetMaterial()

	illumination := w.ambient
	for _, light := range sc.GetLights() {
		illumination = illumination.Add(core.ColorFromVec3(DirectLight(sc, hit.Point, normal, light)))
	}

	incoming := core.Black
	if depth > 0 && mat.IsReflective() {
		reflected := core.NewRay(hit.Point, ray.Direction.Reflect(normal))
		incoming = w.RayColor(reflected, sc, depth-1)
	}

	return mat.Color.Mul(illumination).Scale(1 - mat.Reflectivity).
		Add(incoming.Scale(mat.Reflectivity))
}

// DirectLight returns the light's contribution at a surface point, averaged over
// the light's full sample grid. Samples outside the disc or blocked by an
// occluder between the point and the light add nothing, which produces penumbrae.
func DirectLight(sc *scene.Scene, point, normal core.Vec3, light *lights.DiscLight) core.Vec3 {
	toLight := light.Position.Subtract(point)
	cosine := math.Max(0, toLight.Normalize().Dot(normal))
	if cosine == 0 {
		return core.Vec3{}
	}

	lightDistance := toLight.Length()
	origin := point.Add(normal.Multiply(core.ShadowBias))
	contribution := light.Intensity.Vec3().Multiply(cosine)

	total := core.Vec3{}
	for _, sample := range light.SamplePoints(point) {
		shadowRay := core.NewRay(origin, sample.Subtract(point))

		// Occluders beyond the light do not cast shadows
		if occluder, blocked := Cast(shadowRay, sc); blocked && occluder.Point.Distance(point) <= lightDistance {
			continue
		}
		total = total.Add(contribution)
	}

	return total.Multiply(1.0 / lights.GridSamples)
}
