package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoverlay/hoverlay/pkg/render"
	"github.com/hoverlay/hoverlay/pkg/render/svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path ("" derives from the scenario path)
	scale    float64 // SVG scale factor
	noAnchor bool    // hide the anchor crosshair
	gravity  string  // gravity override
	config   string  // config file path override
}

// newRenderCmd creates the render command for writing SVG snapshots.
//
// Default settings:
//   - scale: 1.0 (or render.scale from the config file)
//   - anchor marker: shown
//   - output: scenario path with a .svg extension
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scenario.json]",
		Short: "Render a placement scenario to an SVG snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenderCmd(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: scenario path with .svg)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "scale factor for the SVG dimensions")
	cmd.Flags().BoolVar(&opts.noAnchor, "no-anchor", false, "hide the anchor marker")
	cmd.Flags().StringVarP(&opts.gravity, "gravity", "g", "", "gravity override: n, s, e, w, center")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file path")

	return cmd
}

func runRenderCmd(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if _, err := parseGravityFlag(opts.gravity); err != nil {
		return err
	}

	cfgPath, err := configPath(opts.config)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	s, err := loadScenario(path, opts.config)
	if err != nil {
		return err
	}
	if opts.gravity != "" {
		s.Gravity = opts.gravity
	}

	res, err := render.Run(s)
	if err != nil {
		return err
	}

	svgOpts := snapshotOptions(cfg, opts)
	out := svg.Render(res, svgOpts...)

	target := opts.output
	if target == "" {
		target = strings.TrimSuffix(path, ".json") + ".svg"
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	prog.done(fmt.Sprintf("Rendered %s", displayName(s, path)))

	printSuccess("Snapshot written")
	printFile(target)
	printDetail("overlay at (%g, %g), %g x %g", res.Position.Left, res.Position.Top, res.Size.W, res.Size.H)
	return nil
}

// snapshotOptions merges config file and flag settings into svg options.
// Flags win over the config file.
func snapshotOptions(cfg Config, opts *renderOpts) []svg.Option {
	var out []svg.Option

	scale := cfg.Render.Scale
	if opts.scale > 0 {
		scale = opts.scale
	}
	if scale > 0 {
		out = append(out, svg.WithScale(scale))
	}

	show := true
	if cfg.Render.AnchorMarker != nil {
		show = *cfg.Render.AnchorMarker
	}
	if opts.noAnchor {
		show = false
	}
	out = append(out, svg.WithAnchorMarker(show))
	return out
}
