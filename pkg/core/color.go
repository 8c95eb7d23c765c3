package core

import "fmt"

// Color is an RGB triple whose channels are kept in [0,1].
// Every arithmetic operation clamps its result.
type Color struct {
	R, G, B float64
}

// Black is the background color returned for rays that escape the scene
var Black = Color{}

// NewColor creates a clamped color
func NewColor(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// ColorFromVec3 converts an accumulated vector to a clamped color
func ColorFromVec3(v Vec3) Color {
	return NewColor(v.X, v.Y, v.Z)
}

// Vec3 returns the channels as an unclamped vector for accumulation
func (c Color) Vec3() Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Add returns the clamped channel-wise sum
func (c Color) Add(other Color) Color {
	return NewColor(c.R+other.R, c.G+other.G, c.B+other.B)
}

// Mul returns the clamped channel-wise product
func (c Color) Mul(other Color) Color {
	return NewColor(c.R*other.R, c.G*other.G, c.B*other.B)
}

// Scale returns the color scaled by a scalar, clamped
func (c Color) Scale(s float64) Color {
	return NewColor(c.R*s, c.G*s, c.B*s)
}

// Luminance returns the Rec. 709 relative luminance of the color
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Bytes converts each channel to floor(channel*255)
func (c Color) Bytes() (r, g, b uint8) {
	return uint8(clamp01(c.R) * 255), uint8(clamp01(c.G) * 255), uint8(clamp01(c.B) * 255)
}

// String formats the color as an "R G B" integer triple
func (c Color) String() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%d %d %d", r, g, b)
}

func clamp01(x float64) float64 {
	// NaN collapses to zero
	if !(x > 0) {
		return 0
	}
	return min(x, 1)
}
