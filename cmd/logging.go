package cmd

import (
	"github.com/urfave/cli"

	"github.com/foglab/go-volumetric-raymarcher/pkg/log"
)

var logger = log.New("fogmarch")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
