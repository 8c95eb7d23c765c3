package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var testMaterial = material.NewMatte(core.NewColor(0.5, 0.5, 0.5))

func TestSphere_Intersect_ThroughCenter(t *testing.T) {
	sphere := NewSphere(core.NewVec3(4, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	point, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Near intersection lies one radius in front of the center
	expected := core.NewVec3(3, 0, 0)
	if point.Distance(expected) > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expected, point)
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	tests := []struct {
		name   string
		sphere *Sphere
		ray    core.Ray
	}{
		{
			name:   "sphere off to the side",
			sphere: NewSphere(core.NewVec3(0, 10, 0), 2.0, testMaterial),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
		},
		{
			name:   "sphere offset from ray axis",
			sphere: NewSphere(core.NewVec3(4, 5, 0), 2.0, testMaterial),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
		},
		{
			name:   "sphere behind the ray",
			sphere: NewSphere(core.NewVec3(-5, 0, 0), 1.0, testMaterial),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
		},
		{
			name:   "distant sphere",
			sphere: NewSphere(core.NewVec3(20, 20, 0), 2.0, testMaterial),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		},
		{
			name:   "tangent ray",
			sphere: NewSphere(core.NewVec3(0, 1, 5), 1.0, testMaterial),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if point, isHit := tt.sphere.Intersect(tt.ray); isHit {
				t.Errorf("Expected miss, but got hit at %v", point)
			}
		})
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	point, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit from inside the sphere")
	}

	expected := core.NewVec3(0, 0, 2)
	if point.Distance(expected) > 1e-9 {
		t.Errorf("Expected far root %v, got %v", expected, point)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, -8, 13), 2.0, testMaterial)
	directions := []core.Vec3{
		core.NewVec3(0, -8, 13),
		core.NewVec3(0.1, -0.6, 1),
		core.NewVec3(-0.05, -0.55, 0.9),
	}

	for _, dir := range directions {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		point, isHit := sphere.Intersect(ray)
		if !isHit {
			t.Fatalf("Expected hit for direction %v", dir)
		}

		if math.Abs(point.Distance(sphere.Center)-sphere.Radius) > core.SurfaceEpsilon {
			t.Errorf("Hit point %v is not on the sphere surface", point)
		}

		normal := sphere.NormalAt(point)
		if math.Abs(normal.Length()-1) > 1e-9 {
			t.Errorf("Expected unit normal, got length %f", normal.Length())
		}
		// Outward normal faces back toward the camera for a front hit
		if normal.Dot(ray.Direction) >= 0 {
			t.Errorf("Expected outward normal facing the ray, got %v", normal)
		}
	}
}

func TestSphere_NormalAt_OffSurfacePanics(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for point off the sphere surface")
		}
	}()
	sphere.NormalAt(core.NewVec3(0, 0, 3))
}

func TestSphere_Intersect_NaNPanics(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), math.NaN(), testMaterial)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for NaN discriminant")
		}
	}()
	sphere.Intersect(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)))
}
