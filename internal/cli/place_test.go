package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoverlay/hoverlay/pkg/errors"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testScenarioJSON() string {
	return `{
  "name": "cli case",
  "container": {"w": 500, "h": 300},
  "anchor": {"left": 200, "top": 150},
  "overlay": {"w": 100, "h": 40},
  "gravity": "w",
  "datum": {
    "series": [{"key": "Requests", "value": 1234.5, "color": "#1f77b4"}]
  }
}`
}

func TestRunPlace(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeScenario(t, testScenarioJSON())

	opts := placeOpts{distance: -1}
	if err := runPlace(context.Background(), path, &opts); err != nil {
		t.Fatalf("runPlace: %v", err)
	}
}

func TestRunPlaceGravityOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeScenario(t, testScenarioJSON())

	opts := placeOpts{gravity: "diagonal", distance: -1}
	err := runPlace(context.Background(), path, &opts)
	if !errors.Is(err, errors.ErrCodeInvalidGravity) {
		t.Errorf("error = %v, want invalid gravity code", err)
	}
}

func TestRunPlaceMissingScenario(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	opts := placeOpts{distance: -1}
	err := runPlace(context.Background(), filepath.Join(t.TempDir(), "nope.json"), &opts)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want file not found code", err)
	}
}

func TestRunRenderWritesSnapshot(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeScenario(t, testScenarioJSON())
	out := filepath.Join(t.TempDir(), "snapshot.svg")

	opts := renderOpts{output: out}
	if err := runRenderCmd(context.Background(), path, &opts); err != nil {
		t.Fatalf("runRenderCmd: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("output is not an SVG document:\n%s", data)
	}
}

func TestRunRenderDerivesOutputPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeScenario(t, testScenarioJSON())

	opts := renderOpts{}
	if err := runRenderCmd(context.Background(), path, &opts); err != nil {
		t.Fatalf("runRenderCmd: %v", err)
	}

	derived := strings.TrimSuffix(path, ".json") + ".svg"
	if _, err := os.Stat(derived); err != nil {
		t.Errorf("derived output missing: %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeScenario(t, testScenarioJSON())

	s, err := loadScenario(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := displayName(s, path); got != "cli case" {
		t.Errorf("displayName = %q, want scenario name", got)
	}

	s.Name = ""
	if got := displayName(s, "case.json"); got != "case" {
		t.Errorf("displayName fallback = %q, want trimmed path", got)
	}
}
