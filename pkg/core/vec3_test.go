package core

import (
	"math"
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Already normalized",
			vector:   NewVec3(1, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Diagonal",
			vector:   NewVec3(1, 1, 1),
			expected: NewVec3(1, 1, 1).Multiply(1 / math.Sqrt(3)),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-12
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3Exp(t *testing.T) {
	v := NewVec3(0, 1, -1)
	result := v.Exp()
	expected := NewVec3(1, math.E, 1/math.E)

	const tolerance = 1e-12
	if result.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"At start", 0, a},
		{"At end", 1, b},
		{"Midpoint", 0.5, NewVec3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(a, b, tt.t)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))

	result := ray.At(5)
	expected := NewVec3(1, 2, 8)

	if result.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}
