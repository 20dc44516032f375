package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
)

// RenderFrame renders a single still frame to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

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

	camera := renderer.NewCamera(sc.GetCameraConfig())
	fs := camera.FrameState(uint32(width), uint32(height), ctx.Float64("time"), 0)

	logger.Noticef("rendering scene %q at %dx%d", sc.Name, width, height)
	img, stats := fr.RenderFrame(fs)

	if err := writePNG(ctx.String("out"), img); err != nil {
		logger.Error(err)
		return err
	}
	logger.Noticef("wrote frame to %s", ctx.String("out"))

	displayFrameStats(stats)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Tiles", "Workers", "Fastest tile", "Slowest tile", "Pixels/sec"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TileCount),
		fmt.Sprintf("%d", stats.Workers),
		stats.FastestTile.Round(time.Microsecond).String(),
		stats.SlowestTile.Round(time.Microsecond).String(),
		fmt.Sprintf("%.0f", stats.PixelsPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.RenderTime.Round(time.Millisecond).String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
