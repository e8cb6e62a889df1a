package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	scenarioio "github.com/hoverlay/hoverlay/pkg/io"
	"github.com/hoverlay/hoverlay/pkg/render"
	"github.com/hoverlay/hoverlay/pkg/tooltip"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	gravity  string // gravity override ("" keeps the scenario's value)
	distance float64
	hidden   bool
	jsonOut  bool   // print the settled state as JSON
	config   string // config file path override
}

// newPlaceCmd creates the place command. It runs a scenario headlessly
// and prints where the overlay settled.
func newPlaceCmd() *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place [scenario.json]",
		Short: "Run a placement scenario and print the settled position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.gravity, "gravity", "g", "", "gravity override: n, s, e, w, center")
	cmd.Flags().Float64VarP(&opts.distance, "distance", "d", -1, "anchor distance override")
	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "run the scenario in its hidden state")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the settled state as JSON")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file path")

	return cmd
}

func runPlace(ctx context.Context, path string, opts *placeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if _, err := parseGravityFlag(opts.gravity); err != nil {
		return err
	}

	s, err := loadScenario(path, opts.config)
	if err != nil {
		return err
	}
	if opts.gravity != "" {
		s.Gravity = opts.gravity
	}
	if opts.distance >= 0 {
		s.Distance = &opts.distance
	}
	if opts.hidden {
		s.Hidden = true
	}

	logger.Debug("running scenario", "name", s.Name, "gravity", s.Gravity)
	res, err := render.Run(s)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed overlay at (%g, %g)", res.Position.Left, res.Position.Top))

	if opts.jsonOut {
		return printPlaceJSON(res)
	}

	printSuccess("Scenario %s", StyleHighlight.Render(displayName(s, path)))
	printKeyValue("position", fmt.Sprintf("(%g, %g)", res.Position.Left, res.Position.Top))
	printKeyValue("size", fmt.Sprintf("%g x %g", res.Size.W, res.Size.H))
	printKeyValue("opacity", fmt.Sprintf("%g", res.Opacity))
	printKeyValue("overlay id", res.Tip.ID())
	printStats(len(s.Datum.Series), false)
	printNewline()
	printNextStep("Render a snapshot", "hoverlay render "+path+" -o snapshot.svg")
	return nil
}

// placeResult is the JSON shape of a settled placement.
type placeResult struct {
	Name     string  `json:"name,omitempty"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Opacity  float64 `json:"opacity"`
	Content  string  `json:"content,omitempty"`
	Overlay  string  `json:"overlay_id"`
	Gravity  string  `json:"gravity"`
	Distance float64 `json:"distance"`
}

func printPlaceJSON(res *render.Result) error {
	out := placeResult{
		Name:     res.Scenario.Name,
		Left:     res.Position.Left,
		Top:      res.Position.Top,
		Width:    res.Size.W,
		Height:   res.Size.H,
		Opacity:  res.Opacity,
		Content:  res.Content,
		Overlay:  res.Tip.ID(),
		Gravity:  string(res.Tip.Gravity()),
		Distance: res.Tip.Distance(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// loadScenario imports a scenario and fills unset placement fields from
// the config file.
func loadScenario(path, configOverride string) (*scenarioio.Scenario, error) {
	cfgPath, err := configPath(configOverride)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	s, err := scenarioio.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	applyConfig(s, cfg)
	return s, nil
}

// applyConfig fills placement fields the scenario leaves unset. Scenario
// values always win over the config file.
func applyConfig(s *scenarioio.Scenario, cfg Config) {
	if s.Gravity == "" && cfg.Placement.Gravity != "" {
		s.Gravity = cfg.Placement.Gravity
	}
	if s.Distance == nil && cfg.Placement.Distance != 0 {
		d := cfg.Placement.Distance
		s.Distance = &d
	}
	if s.DurationMS == nil && cfg.Placement.DurationMS != 0 {
		ms := cfg.Placement.DurationMS
		s.DurationMS = &ms
	}
	if s.HideDelayMS == nil && cfg.Placement.HideDelayMS != 0 {
		ms := cfg.Placement.HideDelayMS
		s.HideDelayMS = &ms
	}
	if cfg.Placement.NegateTrend {
		s.NegateTrend = true
	}
}

// displayName labels a scenario in output, falling back to the file path.
func displayName(s *scenarioio.Scenario, path string) string {
	if s.Name != "" {
		return s.Name
	}
	return strings.TrimSuffix(path, ".json")
}

// parseGravityFlag validates a gravity flag value early, for commands
// that want flag errors before scenario loading.
func parseGravityFlag(v string) (tooltip.Gravity, error) {
	if v == "" {
		return tooltip.GravityNone, nil
	}
	return tooltip.ParseGravity(v)
}
