package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Stratified grid used to approximate a light's disc
const (
	GridResolution = 10
	GridSamples    = GridResolution * GridResolution
	gridStart      = -0.5
	gridStep       = 1.0 / GridResolution
)

// DiscLight is an area emitter: a disc of Radius centered on Position, facing
// whatever point is being shaded.
type DiscLight struct {
	Position  core.Vec3
	Intensity core.Color
	Radius    float64
}

// NewDiscLight creates a new disc light
func NewDiscLight(position core.Vec3, intensity core.Color, radius float64) *DiscLight {
	return &DiscLight{
		Position:  position,
		Intensity: intensity,
		Radius:    radius,
	}
}

// Validate rejects lights with a negative disc radius
func (l *DiscLight) Validate() error {
	if l.Radius < 0 {
		return fmt.Errorf("light radius %g is negative", l.Radius)
	}
	return nil
}

// Basis returns two unit vectors perpendicular to the direction from point to the light
func (l *DiscLight) Basis(point core.Vec3) (u, v core.Vec3) {
	toLight := l.Position.Subtract(point)

	u = core.NewVec3(1, 0, 0).Cross(toLight)
	if u.LengthSquared() < 1e-24 {
		// toLight runs along the x axis
		u = core.NewVec3(0, 1, 0).Cross(toLight)
	}
	u = u.Normalize()
	v = u.Cross(toLight).Normalize()
	return u, v
}

// SamplePoints lays a GridResolution×GridResolution grid of offsets across the plane
// perpendicular to point→light and returns the offset light positions that fall inside
// the disc. Cells outside the disc are dropped, so callers averaging over the full
// grid must divide by GridSamples rather than len(result).
func (l *DiscLight) SamplePoints(point core.Vec3) []core.Vec3 {
	u, v := l.Basis(point)

	samples := make([]core.Vec3, 0, GridSamples)
	for i := 0; i < GridResolution; i++ {
		xOff := gridStart + float64(i)*gridStep
		for j := 0; j < GridResolution; j++ {
			yOff := gridStart + float64(j)*gridStep

			sample := l.Position.Add(u.Multiply(xOff)).Add(v.Multiply(yOff))
			if sample.Distance(l.Position) <= l.Radius {
				samples = append(samples, sample)
			}
		}
	}
	return samples
}
