package cmd

import (
	"github.com/urfave/cli"

	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
)

// Preview opens an interactive window flying the camera through the
// scene. Must run on the main OS thread; main locks it at startup.
func Preview(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	options := renderer.RenderOptions{
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
	}

	preview, err := renderer.NewPreview(sc, ctx.Int("width"), ctx.Int("height"), options, logger)
	if err != nil {
		logger.Error(err)
		return err
	}
	defer preview.Close()

	logger.Notice("preview controls: WASD to move, mouse to look, scroll to change speed, ESC to quit")
	return preview.Run()
}
