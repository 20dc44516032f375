// Package scene bundles everything the renderer needs to draw a frame:
// the medium bounding volume, the density field, the scattering
// configuration and the initial camera pose.
package scene

import (
	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
	"github.com/foglab/go-volumetric-raymarcher/pkg/scatter"
)

// Scene is a complete, immutable description of a volumetric setup.
type Scene struct {
	Name    string
	Bounds  core.AABB
	Medium  core.DensityField
	Scatter scatter.Config
	Camera  renderer.CameraConfig
}

// GetBounds returns the medium bounding volume.
func (s *Scene) GetBounds() core.AABB {
	return s.Bounds
}

// GetMedium returns the density field.
func (s *Scene) GetMedium() core.DensityField {
	return s.Medium
}

// GetScatterConfig returns the scattering configuration.
func (s *Scene) GetScatterConfig() scatter.Config {
	return s.Scatter
}

// GetCameraConfig returns the initial camera pose.
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.Camera
}
