// Package medium provides density fields describing the participating
// medium sampled by the scattering integrators. All fields are pure
// functions of world position so per-pixel evaluation can run in
// parallel with no ordering dependency.
package medium

import (
	"math"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
)

// RadialShell models a spherical atmosphere shell around the origin:
// density falls off exponentially with distance and is zero inside the
// inner radius (the solid body the atmosphere wraps).
type RadialShell struct {
	InnerRadius float64 // no medium below this distance from the origin
	ScaleRadius float64 // distance normalization for the falloff
	Falloff     float64 // larger values stretch the falloff curve
}

// Density returns exp(-(|p|/R)/k) outside the inner radius, zero inside.
func (s RadialShell) Density(p core.Vec3) float64 {
	r := p.Length()
	if r < s.InnerRadius {
		return 0
	}
	return math.Exp(-(r / s.ScaleRadius) / s.Falloff)
}

// SineBands is a synthetic turbulence field: overlapping sine and cosine
// waves of the scaled coordinates produce banded fog, clamped to
// [0, Amplitude].
type SineBands struct {
	Amplitude float64
	Frequency float64
}

// Density returns the banded fog density at p.
func (b SineBands) Density(p core.Vec3) float64 {
	w := math.Sin(p.X*b.Frequency)*math.Cos(p.Z*b.Frequency) +
		0.5*math.Sin(p.Y*b.Frequency*0.7)
	return b.Amplitude * max(0, min(1, w))
}

// Uniform is a constant-density medium. Optical depth through it has a
// closed form, which makes it the reference field for integrator tests.
type Uniform struct {
	Value float64
}

// Density returns the constant density regardless of position.
func (u Uniform) Density(core.Vec3) float64 {
	return u.Value
}
