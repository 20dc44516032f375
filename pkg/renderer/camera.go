package renderer

import (
	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
)

// CameraConfig describes the initial camera pose.
type CameraConfig struct {
	Eye       core.Vec3
	Direction core.Vec3 // look direction; normalized on creation
	Up        core.Vec3
}

// Camera owns the view transform and its inverse. The matrices are
// recomputed whenever the pose changes and exported to the kernel once
// per frame through a FrameState.
type Camera struct {
	eye       core.Vec3
	direction core.Vec3
	up        core.Vec3

	view        core.Mat4
	inverseView core.Mat4
}

// NewCamera creates a camera from the given pose. A zero direction
// defaults to +z and a zero up vector to +y.
func NewCamera(config CameraConfig) *Camera {
	direction := config.Direction
	if direction.LengthSquared() == 0 {
		direction = core.NewVec3(0, 0, 1)
	}
	up := config.Up
	if up.LengthSquared() == 0 {
		up = core.NewVec3(0, 1, 0)
	}

	c := &Camera{
		eye:       config.Eye,
		direction: direction.Normalize(),
		up:        up.Normalize(),
	}
	c.updateMatrices()
	return c
}

func (c *Camera) updateMatrices() {
	c.view = core.LookTo(c.eye, c.direction, c.up)
	c.inverseView = c.view.Inverse()
}

// SetPose moves the camera and recomputes the matrices.
func (c *Camera) SetPose(eye, direction core.Vec3) {
	c.eye = eye
	c.direction = direction.Normalize()
	c.updateMatrices()
}

// Eye returns the camera position.
func (c *Camera) Eye() core.Vec3 {
	return c.eye
}

// Forward returns the normalized look direction.
func (c *Camera) Forward() core.Vec3 {
	return c.direction
}

// Right returns the camera right axis.
func (c *Camera) Right() core.Vec3 {
	return c.up.Cross(c.direction).Normalize()
}

// View returns the view matrix.
func (c *Camera) View() core.Mat4 {
	return c.view
}

// InverseView returns the inverse view matrix.
func (c *Camera) InverseView() core.Mat4 {
	return c.inverseView
}

// FrameState assembles the per-frame uniform bundle for the kernel.
func (c *Camera) FrameState(width, height uint32, time, deltaTime float64) core.FrameState {
	return core.FrameState{
		Width:       width,
		Height:      height,
		Time:        time,
		DeltaTime:   deltaTime,
		View:        c.view,
		InverseView: c.inverseView,
	}
}

// RayThroughNDC converts a normalized screen coordinate (x already
// aspect-corrected, both in [-1, 1]) into a world-space ray: the origin
// is the camera-local origin mapped to world space, the direction points
// through the screen coordinate at unit depth.
func RayThroughNDC(inverseView core.Mat4, x, y float64) core.Ray {
	origin := inverseView.MulPoint(core.Vec3{})
	target := inverseView.MulPoint(core.NewVec3(x, y, 1))
	return core.NewRay(origin, target.Subtract(origin).Normalize())
}
