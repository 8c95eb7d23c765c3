package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTrianglesScene creates a four-sided pyramid of triangles over a reflective floor
func NewTrianglesScene() *Scene {
	s := New(core.NewVec3(0, 1, 0))

	s.AddPlane(
		core.NewVec3(0, -4, 0),
		core.NewVec3(0, -4, 1),
		core.NewVec3(1, -4, 0),
		material.NewMaterial(core.NewColor(0.6, 0.6, 0.6), 0.3),
	)

	apex := core.NewVec3(0, 3, 15)
	base := []core.Vec3{
		core.NewVec3(-4, -4, 11),
		core.NewVec3(4, -4, 11),
		core.NewVec3(4, -4, 19),
		core.NewVec3(-4, -4, 19),
	}
	faces := []material.Material{
		material.NewMatte(core.NewColor(0.9, 0.7, 0.2)),
		material.NewMatte(core.NewColor(0.2, 0.7, 0.9)),
		material.NewMatte(core.NewColor(0.9, 0.7, 0.2)),
		material.NewMatte(core.NewColor(0.2, 0.7, 0.9)),
	}
	for i := range base {
		// Wind each face so its normal points away from the pyramid
		s.AddTriangle(base[i], apex, base[(i+1)%len(base)], faces[i])
	}

	s.AddDiscLight(core.NewVec3(-5, 10, 5), core.NewColor(1, 1, 1), 1.5)

	return s
}
