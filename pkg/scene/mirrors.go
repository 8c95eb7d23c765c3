package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorsScene creates spheres of increasing reflectivity standing on a matte floor
func NewMirrorsScene() *Scene {
	s := New(core.NewVec3(0, 0, 0))

	// Floor at y = -3, normal pointing up
	s.AddPlane(
		core.NewVec3(0, -3, 0),
		core.NewVec3(0, -3, 1),
		core.NewVec3(1, -3, 0),
		material.NewMaterial(core.NewColor(0.8, 0.8, 0.8), 0.1),
	)
	// Back wall at z = 30, normal facing the camera
	s.AddPlane(
		core.NewVec3(0, 0, 30),
		core.NewVec3(0, 1, 30),
		core.NewVec3(1, 0, 30),
		material.NewMatte(core.NewColor(0.3, 0.4, 0.7)),
	)

	s.AddSphere(core.NewVec3(-5, -1, 14), 2, material.NewMatte(core.NewColor(0.9, 0.2, 0.2)))
	s.AddSphere(core.NewVec3(0, -1, 16), 2, material.NewMaterial(core.NewColor(0.2, 0.9, 0.2), 0.5))
	s.AddSphere(core.NewVec3(5, -1, 14), 2, material.NewMirror())

	s.AddDiscLight(core.NewVec3(-6, 10, 8), core.NewColor(0.7, 0.7, 0.7), 1)
	s.AddDiscLight(core.NewVec3(8, 6, 4), core.NewColor(0.4, 0.4, 0.3), 0.5)

	return s
}
