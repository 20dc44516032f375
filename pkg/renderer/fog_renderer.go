package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
	"github.com/foglab/go-volumetric-raymarcher/pkg/log"
	"github.com/foglab/go-volumetric-raymarcher/pkg/scatter"
)

// Scene interface to avoid circular imports with the scene package.
type Scene interface {
	GetBounds() core.AABB
	GetMedium() core.DensityField
	GetScatterConfig() scatter.Config
	GetCameraConfig() CameraConfig
}

// RenderOptions controls frame partitioning and parallelism.
type RenderOptions struct {
	TileSize   int // tile side length in pixels
	NumWorkers int // 0 = CPU count
}

// DefaultRenderOptions returns sensible default values.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		TileSize:   64,
		NumWorkers: 0,
	}
}

// FrameRenderer evaluates the scattering kernel once per covered pixel
// and assembles frames. Frames are deterministic: the same FrameState
// and scene produce identical images.
type FrameRenderer struct {
	integrator *scatter.Integrator
	width      int
	height     int
	options    RenderOptions
	logger     log.Logger
}

// NewFrameRenderer creates a renderer for the given scene and frame size.
func NewFrameRenderer(scene Scene, width, height int, options RenderOptions, logger log.Logger) (*FrameRenderer, error) {
	if scene == nil {
		return nil, ErrNoScene
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if options.TileSize <= 0 {
		options.TileSize = DefaultRenderOptions().TileSize
	}

	return &FrameRenderer{
		integrator: scatter.NewIntegrator(scene.GetBounds(), scene.GetMedium(), scene.GetScatterConfig()),
		width:      width,
		height:     height,
		options:    options,
		logger:     logger,
	}, nil
}

// RenderFrame renders one frame for the given per-frame state.
func (fr *FrameRenderer) RenderFrame(fs core.FrameState) (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, fr.width, fr.height))

	tiles := NewTileGrid(fr.width, fr.height, fr.options.TileSize)
	pool := NewWorkerPool(fr, fr.options.NumWorkers, len(tiles))
	pool.Start()

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			Frame:  fs,
			Target: img,
			TaskID: tile.ID,
		})
	}

	stats := RenderStats{
		TotalPixels: fr.width * fr.height,
		TileCount:   len(tiles),
		Workers:     pool.NumWorkers(),
	}
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if stats.FastestTile == 0 || result.Stats.Duration < stats.FastestTile {
			stats.FastestTile = result.Stats.Duration
		}
		if result.Stats.Duration > stats.SlowestTile {
			stats.SlowestTile = result.Stats.Duration
		}
	}
	pool.Stop()

	stats.RenderTime = time.Since(start)
	if fr.logger != nil {
		fr.logger.Debugf("frame t=%.3fs rendered in %s (%d tiles, %d workers)",
			fs.Time, stats.RenderTime, stats.TileCount, stats.Workers)
	}
	return img, stats
}

// renderBounds evaluates every pixel inside bounds and writes the result
// into the shared frame image.
func (fr *FrameRenderer) renderBounds(bounds image.Rectangle, fs core.FrameState, img *image.RGBA) TileStats {
	start := time.Now()
	aspect := fs.AspectRatio()
	invWidth := 1.0 / float64(fs.Width)
	invHeight := 1.0 / float64(fs.Height)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			// Pixel center to NDC; x is aspect-corrected, y points up.
			ndcX := (2*(float64(i)+0.5)*invWidth - 1) * aspect
			ndcY := 1 - 2*(float64(j)+0.5)*invHeight

			ray := RayThroughNDC(fs.InverseView, ndcX, ndcY)
			img.SetRGBA(i, j, vec3ToColor(fr.integrator.Trace(ray)))
		}
	}

	return TileStats{
		Pixels:   bounds.Dx() * bounds.Dy(),
		Duration: time.Since(start),
	}
}

// vec3ToColor converts a linear color vector to RGBA with gamma
// correction and clamping. Alpha is fixed at 255.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
