package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPrimaryDirection(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected core.Vec3
	}{
		{"top left", 0, 0, core.NewVec3(-1, 1, 1)},
		{"center", 50, 50, core.NewVec3(0, 0, 1)},
		{"last pixel", 99, 99, core.NewVec3(0.98, -0.98, 1)},
		{"right edge of first row", 75, 0, core.NewVec3(0.5, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction := PrimaryDirection(tt.x, tt.y, 100, 100)
			if direction.Distance(tt.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, direction)
			}
		})
	}
}
