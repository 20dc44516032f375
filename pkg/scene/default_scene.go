package scene

import (
	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
	"github.com/foglab/go-volumetric-raymarcher/pkg/medium"
	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
	"github.com/foglab/go-volumetric-raymarcher/pkg/scatter"
)

// NewDefaultScene creates the reference atmosphere: an exponential
// spherical shell around the origin inside a large box, lit by a
// diagonal sun. The camera floats inside the medium looking toward the
// horizon, so rays both inside and outside the volume are exercised.
func NewDefaultScene() *Scene {
	return &Scene{
		Name:   "default",
		Bounds: core.NewAABB(core.NewVec3(-60, -60, -60), core.NewVec3(60, 60, 60)),
		Medium: medium.RadialShell{
			InnerRadius: 10,
			ScaleRadius: 60,
			Falloff:     0.5,
		},
		Scatter: scatter.DefaultConfig(),
		Camera: renderer.CameraConfig{
			Eye:       core.NewVec3(0, 15, -55),
			Direction: core.NewVec3(0, -0.1, 1),
			Up:        core.NewVec3(0, 1, 0),
		},
	}
}
