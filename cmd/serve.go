package cmd

import (
	"github.com/urfave/cli"

	"github.com/foglab/go-volumetric-raymarcher/web/server"
)

// Serve starts the HTTP render service.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	s := server.NewServer(ctx.Int("port"), logger)
	return s.Start()
}
