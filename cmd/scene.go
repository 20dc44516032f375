package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/foglab/go-volumetric-raymarcher/pkg/scene"
)

// loadScene resolves the scene for a command invocation: an explicit
// JSON file wins over a preset name.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if path := ctx.String("scene-file"); path != "" {
		return scene.Load(path)
	}
	return scene.New(ctx.String("scene"))
}

// ListScenes prints the available scene presets.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Medium", "Bounds"})
	for _, name := range scene.List() {
		sc, err := scene.New(name)
		if err != nil {
			return err
		}
		size := sc.Bounds.Size()
		table.Append([]string{
			name,
			fmt.Sprintf("%T", sc.Medium),
			fmt.Sprintf("%.0f x %.0f x %.0f", size.X, size.Y, size.Z),
		})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", strings.TrimRight(buf.String(), "\n"))
	return nil
}
