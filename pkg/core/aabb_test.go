package core

import (
	"math"
	"testing"
)

func TestAABBIntersect(t *testing.T) {
	box := NewAABB(NewVec3(-10, -10, -10), NewVec3(10, 10, 10))

	tests := []struct {
		name      string
		ray       Ray
		wantNear  float64
		wantFar   float64
		tolerance float64
	}{
		{
			name:      "Origin outside, pointing at the box",
			ray:       NewRay(NewVec3(0, 0, -50), NewVec3(0, 0, 1)),
			wantNear:  40,
			wantFar:   60,
			tolerance: 1e-9,
		},
		{
			name:      "Origin outside, pointing away",
			ray:       NewRay(NewVec3(0, 0, -50), NewVec3(0, 0, -1)),
			wantNear:  BoxMiss,
			wantFar:   BoxMiss,
			tolerance: 0,
		},
		{
			name:      "Origin outside, perpendicular miss",
			ray:       NewRay(NewVec3(0, 0, -50), NewVec3(0, 1, 0)),
			wantNear:  BoxMiss,
			wantFar:   BoxMiss,
			tolerance: 0,
		},
		{
			name:      "Origin inside the box",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1)),
			wantNear:  -10,
			wantFar:   10,
			tolerance: 1e-9,
		},
		{
			name:      "Diagonal hit through corners",
			ray:       NewRay(NewVec3(-20, -20, -20), NewVec3(1, 1, 1).Normalize()),
			wantNear:  10 * math.Sqrt(3),
			wantFar:   30 * math.Sqrt(3),
			tolerance: 1e-9,
		},
		{
			name:      "Zero direction component inside slab",
			ray:       NewRay(NewVec3(0, 0, -50), NewVec3(0, 0, 1)),
			wantNear:  40,
			wantFar:   60,
			tolerance: 1e-9,
		},
		{
			name:      "Zero direction component outside slab",
			ray:       NewRay(NewVec3(0, 20, -50), NewVec3(0, 0, 1)),
			wantNear:  BoxMiss,
			wantFar:   BoxMiss,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			near, far := box.Intersect(tt.ray)
			if math.Abs(near-tt.wantNear) > tt.tolerance || math.Abs(far-tt.wantFar) > tt.tolerance {
				t.Errorf("Intersect() = (%v, %v), want (%v, %v)", near, far, tt.wantNear, tt.wantFar)
			}
		})
	}
}

func TestAABBIntersectInsideNegativeNear(t *testing.T) {
	box := NewAABB(NewVec3(-10, -10, -10), NewVec3(10, 10, 10))
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1))

	near, far := box.Intersect(ray)
	if near >= 0 {
		t.Errorf("Expected negative tNear for an interior origin, got %v", near)
	}
	if far <= 0 {
		t.Errorf("Expected positive tFar for an interior origin, got %v", far)
	}
}

func TestAABBIntersectGrazing(t *testing.T) {
	// The ray clips exactly the (-10, 10) edge: it enters the x slab at
	// the same parameter it exits the y slab, so tNear == tFar. That
	// still counts as a hit.
	box := NewAABB(NewVec3(-10, -10, -10), NewVec3(10, 10, 10))
	ray := NewRay(NewVec3(-20, 0, 0), NewVec3(1, 1, 0).Normalize())

	near, far := box.Intersect(ray)
	if near == BoxMiss && far == BoxMiss {
		t.Fatalf("Grazing ray reported as a miss")
	}
	if math.Abs(near-far) > 1e-9 {
		t.Errorf("Expected a degenerate interval, got (%v, %v)", near, far)
	}
}

func TestAABBContains(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(1, 2, 3))

	if !box.Contains(NewVec3(0, 0, 0)) {
		t.Error("Center should be inside")
	}
	if !box.Contains(NewVec3(1, 2, 3)) {
		t.Error("Corner should be inside (borders included)")
	}
	if box.Contains(NewVec3(1.001, 0, 0)) {
		t.Error("Point beyond the max corner should be outside")
	}
}
