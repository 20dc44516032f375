package scene

import (
	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
	"github.com/foglab/go-volumetric-raymarcher/pkg/medium"
	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
	"github.com/foglab/go-volumetric-raymarcher/pkg/scatter"
)

// NewTurbulenceScene creates banded synthetic fog in a flat box. The
// Mie term is enabled here to give the bands a halo around the sun.
func NewTurbulenceScene() *Scene {
	config := scatter.DefaultConfig()
	config.MieIntensity = 0.35
	config.MieAnisotropy = -0.75

	return &Scene{
		Name:   "turbulence",
		Bounds: core.NewAABB(core.NewVec3(-20, -8, -20), core.NewVec3(20, 12, 20)),
		Medium: medium.SineBands{
			Amplitude: 0.8,
			Frequency: 0.35,
		},
		Scatter: config,
		Camera: renderer.CameraConfig{
			Eye:       core.NewVec3(0, 2, -28),
			Direction: core.NewVec3(0, 0, 1),
			Up:        core.NewVec3(0, 1, 0),
		},
	}
}
