package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/hoverlay/hoverlay/pkg/errors"
	"github.com/hoverlay/hoverlay/pkg/tooltip"
)

// Config holds the CLI configuration, loaded from a TOML file. Zero
// values mean "use the engine default"; flags override the file.
type Config struct {
	Placement PlacementConfig `toml:"placement"`
	Render    RenderConfig    `toml:"render"`
	Serve     ServeConfig     `toml:"serve"`
}

// PlacementConfig carries default placement options.
type PlacementConfig struct {
	Gravity     string  `toml:"gravity"`
	Distance    float64 `toml:"distance"`
	DurationMS  int     `toml:"duration_ms"`
	HideDelayMS int     `toml:"hide_delay_ms"`
	NegateTrend bool    `toml:"negate_trend"`
}

// RenderConfig carries SVG snapshot options.
type RenderConfig struct {
	Scale        float64 `toml:"scale"`
	AnchorMarker *bool   `toml:"anchor_marker"`
}

// ServeConfig carries HTTP server options.
type ServeConfig struct {
	Addr         string `toml:"addr"`
	CacheContent bool   `toml:"cache_content"`
}

const defaultConfig = `# hoverlay configuration

[placement]
# gravity = "w"        # n, s, e, w, or center
# distance = 25.0      # anchor gap in pixels
# duration_ms = 100    # move tween duration
# hide_delay_ms = 400  # hide debounce
# negate_trend = false

[render]
# scale = 1.0
# anchor_marker = true

[serve]
# addr = ":8080"
# cache_content = true
`

// configPath returns the config file path, honoring --config when set.
func configPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config file at path. A missing file is not an
// error; it yields the zero config so every default applies.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Placement.Gravity != "" {
		if _, err := tooltip.ParseGravity(c.Placement.Gravity); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "placement.gravity")
		}
	}
	if c.Placement.Distance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"placement.distance must be non-negative, got %g", c.Placement.Distance)
	}
	if c.Render.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"render.scale must be non-negative, got %g", c.Render.Scale)
	}
	return nil
}

// newConfigCmd creates the config command with init/show/path subcommands.
func newConfigCmd() *cobra.Command {
	var override string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.PersistentFlags().StringVar(&override, "config", "", "config file path")

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(override)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				printWarning("Config already exists at %s", path)
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
				return err
			}
			printSuccess("Wrote default config")
			printFile(path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(override)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			printKeyValue("gravity", orDefault(cfg.Placement.Gravity, string(tooltip.GravityWest)))
			printKeyValue("distance", fmt.Sprintf("%g", orDefaultF(cfg.Placement.Distance, tooltip.DefaultDistance)))
			printKeyValue("duration", fmt.Sprintf("%dms", orDefaultI(cfg.Placement.DurationMS, 100)))
			printKeyValue("hide delay", fmt.Sprintf("%dms", orDefaultI(cfg.Placement.HideDelayMS, 400)))
			printKeyValue("addr", orDefault(cfg.Serve.Addr, defaultServeAddr))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(override)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})

	return cmd
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultF(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultI(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
