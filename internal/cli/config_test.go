package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hoverlay/hoverlay/pkg/errors"
	"github.com/hoverlay/hoverlay/pkg/geom"
	scenarioio "github.com/hoverlay/hoverlay/pkg/io"
	"github.com/hoverlay/hoverlay/pkg/tooltip"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[placement]
gravity = "n"
distance = 40.0
duration_ms = 250

[serve]
addr = ":9999"
cache_content = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Placement.Gravity != "n" {
		t.Errorf("gravity = %q, want n", cfg.Placement.Gravity)
	}
	if cfg.Placement.Distance != 40 {
		t.Errorf("distance = %v, want 40", cfg.Placement.Distance)
	}
	if cfg.Serve.Addr != ":9999" || !cfg.Serve.CacheContent {
		t.Errorf("serve config = %+v", cfg.Serve)
	}
}

func TestLoadConfigMissingFileIsZero(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("missing file produced non-zero config: %+v", cfg)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad gravity", content: "[placement]\ngravity = \"diagonal\"\n"},
		{name: "negative distance", content: "[placement]\ndistance = -5.0\n"},
		{name: "malformed toml", content: "[placement\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want invalid config code", err)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := Config{Placement: PlacementConfig{Gravity: "n", Distance: 40, DurationMS: 250}}

	s := &scenarioio.Scenario{
		Container: geom.Size{W: 100, H: 100},
		Datum:     tooltip.Datum{},
	}
	applyConfig(s, cfg)
	if s.Gravity != "n" || s.Distance == nil || *s.Distance != 40 {
		t.Errorf("config defaults not applied: %+v", s)
	}
	if s.DurationMS == nil || *s.DurationMS != 250 {
		t.Errorf("duration default not applied: %+v", s.DurationMS)
	}

	// Scenario values win over the config file.
	d := 10.0
	s = &scenarioio.Scenario{
		Container: geom.Size{W: 100, H: 100},
		Gravity:   "e",
		Distance:  &d,
	}
	applyConfig(s, cfg)
	if s.Gravity != "e" || *s.Distance != 10 {
		t.Errorf("scenario values overridden by config: %+v", s)
	}
}
