package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, testMaterial)

	tests := []struct {
		name          string
		ray           core.Ray
		shouldHit     bool
		expectedPoint core.Vec3
	}{
		{
			name:          "Ray hits triangle center",
			ray:           core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			shouldHit:     true,
			expectedPoint: core.NewVec3(0.25, 0.25, 0),
		},
		{
			name:          "Ray hits triangle edge",
			ray:           core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			shouldHit:     true,
			expectedPoint: core.NewVec3(0.5, 0, 0),
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(0.8, 0.8, -1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, isHit := triangle.Intersect(tt.ray)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if isHit && point.Distance(tt.expectedPoint) > 1e-9 {
				t.Errorf("Expected hit point %v, got %v", tt.expectedPoint, point)
			}
		})
	}
}

func TestTriangle_NormalAt(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial,
	)

	point, isHit := triangle.Intersect(core.NewRay(core.NewVec3(0.2, 0.3, 2), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	normal := triangle.NormalAt(point)
	expected := core.NewVec3(0, 0, 1)
	if normal.Distance(expected) > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for point off the triangle plane")
		}
	}()
	triangle.NormalAt(core.NewVec3(0.2, 0.3, 1))
}
