// Command hoverlay is the command-line interface for the Hoverlay
// placement engine.
package main

import (
	"os"

	"github.com/hoverlay/hoverlay/internal/cli"
	"github.com/hoverlay/hoverlay/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
