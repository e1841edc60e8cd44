package main

import (
	"os"

	"github.com/ironsheep/imposter/internal/cli"
)

// Version is set by ldflags during build.
var Version = "dev"

func main() {
	cli.SetVersion(Version)

	if err := cli.Execute(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
