package core

import "math"

// BoxMiss is the parametric distance reported for both interval ends when
// a ray does not intersect the box.
const BoxMiss = -1.0

// AABB is the axis-aligned box bounding the participating medium.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Intersect computes the parametric interval [tNear, tFar] where the ray
// overlaps the box, using the slab method. Zero direction components are
// not special-cased: the division yields a signed infinity that flows
// through the min/max reduction unchanged.
//
// Both values are BoxMiss when the ray misses the box or the box lies
// entirely behind the origin. tNear may be negative when the origin is
// inside the box; callers clamp the march start to the origin in that
// case. A grazing hit with tNear == tFar is a valid intersection.
func (aabb AABB) Intersect(ray Ray) (tNear, tFar float64) {
	tx0 := (aabb.Min.X - ray.Origin.X) / ray.Direction.X
	tx1 := (aabb.Max.X - ray.Origin.X) / ray.Direction.X
	ty0 := (aabb.Min.Y - ray.Origin.Y) / ray.Direction.Y
	ty1 := (aabb.Max.Y - ray.Origin.Y) / ray.Direction.Y
	tz0 := (aabb.Min.Z - ray.Origin.Z) / ray.Direction.Z
	tz1 := (aabb.Max.Z - ray.Origin.Z) / ray.Direction.Z

	tNear = math.Max(math.Max(math.Min(tx0, tx1), math.Min(ty0, ty1)), math.Min(tz0, tz1))
	tFar = math.Min(math.Min(math.Max(tx0, tx1), math.Max(ty0, ty1)), math.Max(tz0, tz1))

	if tNear > tFar || tFar < 0 {
		return BoxMiss, BoxMiss
	}
	return tNear, tFar
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Contains reports whether the point lies inside the box (borders included)
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
