package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light: a base color blended
// with a perfect mirror term by Reflectivity (0 = fully diffuse, 1 = perfect mirror).
type Material struct {
	Color        core.Color
	Reflectivity float64
}

// NewMaterial creates a material with the given base color and reflectivity
func NewMaterial(color core.Color, reflectivity float64) Material {
	return Material{Color: color, Reflectivity: reflectivity}
}

// NewMatte creates a fully diffuse material
func NewMatte(color core.Color) Material {
	return Material{Color: color}
}

// NewMirror creates a perfect mirror. The base color only matters if reflectivity is later lowered.
func NewMirror() Material {
	return Material{Color: core.NewColor(1, 1, 1), Reflectivity: 1}
}

// IsReflective reports whether shading should trace a mirror bounce
func (m Material) IsReflective() bool {
	return m.Reflectivity > 0
}

// Validate checks that reflectivity lies in [0,1]
func (m Material) Validate() error {
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("reflectivity %g outside [0,1]", m.Reflectivity)
	}
	return nil
}
