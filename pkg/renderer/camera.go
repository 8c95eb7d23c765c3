package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PrimaryDirection maps pixel (x, y) onto an image plane one unit in front of the
// camera, spanning [-1,1] on both axes. x grows to the right and y grows downward;
// there is no aspect-ratio or field-of-view correction.
func PrimaryDirection(x, y, width, height int) core.Vec3 {
	return core.NewVec3(
		-1+2*float64(x)/float64(width),
		1-2*float64(y)/float64(height),
		1,
	)
}
