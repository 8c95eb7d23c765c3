package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a single matte sphere below and in front of the camera, lit from above
func NewDefaultScene() *Scene {
	s := New(core.NewVec3(0, 0, 0))

	s.AddSphere(core.NewVec3(0, -8, 13), 2, material.NewMatte(core.NewColor(0.9, 0.3, 0.2)))
	s.AddDiscLight(core.NewVec3(0, 4.5, 7), core.NewColor(1, 1, 1), 1)

	return s
}
