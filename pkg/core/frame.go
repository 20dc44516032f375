package core

// FrameState is the read-only per-frame uniform bundle supplied by the
// host once per frame: output resolution, wall-clock timing, and the
// camera view transform with its inverse. The rendering kernel never
// mutates it, which keeps per-pixel evaluation free of shared state.
type FrameState struct {
	Width  uint32
	Height uint32

	// Elapsed seconds since the host started, and seconds since the
	// previous frame.
	Time      float64
	DeltaTime float64

	View        Mat4
	InverseView Mat4
}

// AspectRatio returns the width/height ratio used to aspect-correct the
// horizontal screen coordinate.
func (fs FrameState) AspectRatio() float64 {
	if fs.Height == 0 {
		return 1
	}
	return float64(fs.Width) / float64(fs.Height)
}
