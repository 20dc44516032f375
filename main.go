package main

import (
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/foglab/go-volumetric-raymarcher/cmd"
)

func init() {
	// The interactive preview drives glfw, which must stay on the
	// thread that created the window.
	runtime.LockOSThread()
}

func sceneFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "default",
			Usage: "scene preset name (see list-scenes)",
		},
		cli.StringFlag{
			Name:  "scene-file",
			Usage: "load scene from a JSON file instead of a preset",
		},
	}
}

func renderFlags() []cli.Flag {
	return append(sceneFlags(),
		cli.IntFlag{
			Name:  "width",
			Value: 800,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 600,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "tile-size",
			Value: 64,
			Usage: "tile side length in pixels",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "number of render workers (0 = CPU count)",
		},
	)
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "fogmarch"
	app.Usage = "render volumetric fog and sky by raymarching"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a PNG file",
			Flags: append(renderFlags(),
				cli.Float64Flag{
					Name:  "time",
					Value: 0,
					Usage: "scene time in seconds",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "animate",
			Usage: "render an orbiting frame sequence as numbered PNGs",
			Flags: append(renderFlags(),
				cli.IntFlag{
					Name:  "frames",
					Value: 120,
					Usage: "number of frames to render",
				},
				cli.Float64Flag{
					Name:  "fps",
					Value: 30,
					Usage: "playback rate used to derive per-frame time",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frames",
					Usage: "output directory for the frame sequence",
				},
			),
			Action: cmd.RenderAnimation,
		},
		{
			Name:   "preview",
			Usage:  "open an interactive preview window",
			Flags:  renderFlags(),
			Action: cmd.Preview,
		},
		{
			Name:  "serve",
			Usage: "start the HTTP render service",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to listen on",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available scene presets",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}
