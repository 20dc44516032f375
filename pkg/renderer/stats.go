package renderer

import "time"

// RenderStats summarizes a rendered frame.
type RenderStats struct {
	TotalPixels int
	TileCount   int
	Workers     int
	RenderTime  time.Duration

	// Per-tile wall-clock extremes; tiles covering thick medium take
	// longer than tiles resolving to pure sky.
	FastestTile time.Duration
	SlowestTile time.Duration
}

// PixelsPerSecond returns the overall throughput of the frame.
func (rs RenderStats) PixelsPerSecond() float64 {
	if rs.RenderTime <= 0 {
		return 0
	}
	return float64(rs.TotalPixels) / rs.RenderTime.Seconds()
}

// TileStats reports timing for a single rendered tile.
type TileStats struct {
	Pixels   int
	Duration time.Duration
}
