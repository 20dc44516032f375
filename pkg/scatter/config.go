// Package scatter implements single-scattering integration through a
// box-bounded participating medium: optical depth accumulation along
// light and view paths, in-scattered sunlight, a procedural sky, and the
// compositing of the two.
package scatter

import (
	"math"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
)

// Config holds the tunable scattering constants. The values are stylized
// approximations chosen for their look, not measured optical data, so
// they live here as named knobs instead of literals inside the kernel.
type Config struct {
	// Wavelengths is the stylized per-channel wavelength vector. The
	// Rayleigh coefficient for a channel is RayleighIntensity / λ^4.
	Wavelengths       core.Vec3
	RayleighIntensity float64

	// MieIntensity scales the Henyey-Greenstein phase contribution.
	// Zero disables it, leaving the Rayleigh phase term alone.
	MieIntensity  float64
	MieAnisotropy float64

	SunDirection core.Vec3
	SkyColor     core.Vec3
	SunSharpness float64 // exponent of the sun highlight falloff

	// LightSteps is the step count of the coarse optical-depth marches
	// toward the light and back toward the camera. ViewSteps is the
	// step count of the primary view-segment march; it is deliberately
	// much larger, since the primary ray needs fine sampling for
	// visual smoothness while the attenuation sub-integrals are rough
	// approximations.
	LightSteps int
	ViewSteps  int
}

// DefaultConfig returns the reference constants.
func DefaultConfig() Config {
	return Config{
		Wavelengths:       core.NewVec3(0.650, 0.570, 0.475),
		RayleighIntensity: 0.1,
		MieIntensity:      0,
		MieAnisotropy:     -0.85,
		SunDirection:      core.NewVec3(1, 1, 1).Normalize(),
		SkyColor:          core.NewVec3(0.30, 0.55, 0.85),
		SunSharpness:      128,
		LightSteps:        8,
		ViewSteps:         256,
	}
}

// RayleighCoefficients derives the per-channel scattering coefficient
// vector intensity/λ^4.
func (c Config) RayleighCoefficients() core.Vec3 {
	return core.NewVec3(
		c.RayleighIntensity/math.Pow(c.Wavelengths.X, 4),
		c.RayleighIntensity/math.Pow(c.Wavelengths.Y, 4),
		c.RayleighIntensity/math.Pow(c.Wavelengths.Z, 4),
	)
}
