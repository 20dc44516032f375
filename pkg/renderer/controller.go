package renderer

import (
	"math"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
)

// Axis tracks a pair of opposing movement keys and resolves them to a
// value in [-1, 1].
type Axis struct {
	negativePressed bool
	positivePressed bool
}

// SetNegative records the pressed state of the negative-direction key.
func (a *Axis) SetNegative(pressed bool) {
	a.negativePressed = pressed
}

// SetPositive records the pressed state of the positive-direction key.
func (a *Axis) SetPositive(pressed bool) {
	a.positivePressed = pressed
}

// Value returns the resolved axis input.
func (a *Axis) Value() float64 {
	v := 0.0
	if a.negativePressed {
		v -= 1
	}
	if a.positivePressed {
		v += 1
	}
	return v
}

// CameraController converts accumulated input (movement axes, mouse
// deltas, scroll) into camera pose updates. It is input-backend agnostic;
// the interactive preview feeds it from window events.
type CameraController struct {
	Speed       float64
	Sensitivity float64

	Horizontal Axis
	Vertical   Axis

	motionX float64
	motionY float64
}

// NewCameraController creates a controller with the given movement speed
// (units per second) and mouse sensitivity (radians per pixel).
func NewCameraController(speed, sensitivity float64) *CameraController {
	return &CameraController{Speed: speed, Sensitivity: sensitivity}
}

// AddCursorDelta accumulates mouse-look movement.
func (cc *CameraController) AddCursorDelta(dx, dy float64) {
	cc.motionX += dx
	cc.motionY += dy
}

// AdjustSpeed scales movement speed by scroll input.
func (cc *CameraController) AdjustSpeed(scroll float64) {
	cc.Speed *= 1 + scroll*0.1
}

// Update applies the accumulated input to the camera for a frame that
// took delta seconds. Orientation is absolute (total yaw/pitch applied
// to the +z reference direction), movement is relative to the current
// orientation.
func (cc *CameraController) Update(camera *Camera, delta float64) {
	yaw := cc.motionX * cc.Sensitivity
	pitch := cc.motionY * cc.Sensitivity

	direction := core.RotationY(yaw).Mul(core.RotationX(pitch)).MulDir(core.NewVec3(0, 0, 1))

	eye := camera.Eye()
	h, v := cc.Horizontal.Value(), cc.Vertical.Value()
	if h != 0 || v != 0 {
		movement := camera.Right().Multiply(h).Add(direction.Multiply(v))
		eye = eye.Add(movement.Normalize().Multiply(cc.Speed * delta))
	}

	camera.SetPose(eye, direction)
}

// OrbitPose returns an eye/direction pair orbiting the given center at
// the given radius and height, angle radians around the y axis, always
// looking at the center. Used by the frame-sequence renderer.
func OrbitPose(center core.Vec3, radius, height, angle float64) (eye, direction core.Vec3) {
	eye = center.Add(core.NewVec3(radius*math.Sin(angle), height, -radius*math.Cos(angle)))
	direction = center.Subtract(eye).Normalize()
	return eye, direction
}
