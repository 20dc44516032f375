package core

// DensityField returns the local medium density at a world position.
// Implementations must be pure functions of position: no hidden state,
// identical input always yields identical output. They must be evaluable
// at any point, including outside the bounding volume.
type DensityField interface {
	Density(p Vec3) float64
}
