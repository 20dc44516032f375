package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
)

// RenderAnimation renders a frame sequence with the camera orbiting the
// medium, writing numbered PNGs suitable for assembly into a video.
func RenderAnimation(ctx *cli.Context) error {
	setupLogging(ctx)

	frames := ctx.Int("frames")
	fps := ctx.Float64("fps")
	if frames <= 0 || fps <= 0 {
		return errors.New("frames and fps must be positive")
	}

	sc, err := loadScene(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	width := ctx.Int("width")
	height := ctx.Int("height")
	options := renderer.RenderOptions{
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
	}

	fr, err := renderer.NewFrameRenderer(sc, width, height, options, logger)
	if err != nil {
		logger.Error(err)
		return err
	}

	outDir := ctx.String("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Error(err)
		return err
	}

	// Orbit at a distance that keeps the whole medium in view.
	center := sc.Bounds.Center()
	size := sc.Bounds.Size()
	radius := size.Length()
	heightOffset := size.Y * 0.25

	camera := renderer.NewCamera(sc.GetCameraConfig())
	delta := 1.0 / fps

	logger.Noticef("rendering %d frames of scene %q at %dx%d", frames, sc.Name, width, height)
	for frame := 0; frame < frames; frame++ {
		angle := 2 * math.Pi * float64(frame) / float64(frames)
		camera.SetPose(renderer.OrbitPose(center, radius, heightOffset, angle))

		fs := camera.FrameState(uint32(width), uint32(height), float64(frame)*delta, delta)
		img, stats := fr.RenderFrame(fs)

		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", frame))
		if err := writePNG(path, img); err != nil {
			logger.Error(err)
			return err
		}
		logger.Infof("frame %d/%d in %s", frame+1, frames, stats.RenderTime)
	}

	logger.Noticef("wrote %d frames to %s", frames, outDir)
	return nil
}
