package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Numeric tolerances shared by geometry and shading
const (
	// DiscriminantEpsilon is the smallest ray/sphere discriminant treated as a hit
	DiscriminantEpsilon = 1e-9

	// ParallelEpsilon bounds |d·n| below which a ray is parallel to a plane
	ParallelEpsilon = 1e-9

	// SurfaceEpsilon is the distance within which a point counts as lying on a surface
	SurfaceEpsilon = 1e-6

	// MinHitDistance rejects hits this close to the ray origin (shadow acne guard)
	MinHitDistance = 0.001

	// ShadowBias offsets shadow ray origins along the surface normal
	ShadowBias = 1e-9
)
