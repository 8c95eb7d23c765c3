package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is populated once, then shared read-only by every render worker.
type Scene struct {
	Camera     core.Vec3            // Camera position; the view looks down +Z
	Primitives []geometry.Primitive // Objects in the scene, in insertion order
	Lights     []*lights.DiscLight  // Lights in the scene, in insertion order
}

// New creates an empty scene viewed from the given camera position
func New(camera core.Vec3) *Scene {
	return &Scene{
		Camera:     camera,
		Primitives: make([]geometry.Primitive, 0),
		Lights:     make([]*lights.DiscLight, 0),
	}
}

// Add appends a primitive to the scene
func (s *Scene) Add(p geometry.Primitive) {
	s.Primitives = append(s.Primitives, p)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(l *lights.DiscLight) {
	s.Lights = append(s.Lights, l)
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Add(geometry.NewSphere(center, radius, mat))
}

// AddPlane adds the plane through three points to the scene
func (s *Scene) AddPlane(a, b, c core.Vec3, mat material.Material) {
	s.Add(geometry.NewPlaneFromPoints(a, b, c, mat))
}

// AddTriangle adds a triangle to the scene
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, mat material.Material) {
	s.Add(geometry.NewTriangle(v0, v1, v2, mat))
}

// AddDiscLight adds a disc light to the scene
func (s *Scene) AddDiscLight(position core.Vec3, intensity core.Color, radius float64) {
	s.AddLight(lights.NewDiscLight(position, intensity, radius))
}

// GetPrimitives returns the scene's primitives
func (s *Scene) GetPrimitives() []geometry.Primitive {
	return s.Primitives
}

// GetLights returns the scene's lights
func (s *Scene) GetLights() []*lights.DiscLight {
	return s.Lights
}

// GetCamera returns the camera position
func (s *Scene) GetCamera() core.Vec3 {
	return s.Camera
}
