// Package cli implements the hoverlay command-line interface.
//
// This package provides commands for running placement scenarios, writing
// SVG snapshots, serving placements over HTTP, and an interactive terminal
// demo. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - place: Run a scenario and print the settled placement
//   - render: Write an SVG snapshot of a scenario
//   - demo: Interactive terminal playground for the placement engine
//   - serve: HTTP API for scenario rendering
//   - config: Manage the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/hoverlay/hoverlay/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"os"
	"path/filepath"
)

// appName is the application name used for directories and display.
const appName = "hoverlay"

// configDir returns the configuration directory using the XDG standard
// (~/.config/hoverlay/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
