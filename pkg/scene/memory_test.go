package scene

import (
	"testing"

	"github.com/hoverlay/hoverlay/pkg/geom"
)

func TestMemoryCreateNode(t *testing.T) {
	m := NewMemory(geom.Size{W: 800, H: 600})

	a := m.CreateNode("div", nil)
	b := m.CreateNode("div", nil)

	if a.ID() == b.ID() {
		t.Errorf("node ids should be unique, both = %q", a.ID())
	}
	if got := m.Container(a); got != (geom.Size{W: 800, H: 600}) {
		t.Errorf("Container() = %v, want root viewport", got)
	}
}

func TestMemoryMeasure(t *testing.T) {
	m := NewMemory(geom.Size{W: 800, H: 600})

	n := m.CreateNode("div", nil)
	if got := m.Measure(n); got != (geom.Size{}) {
		t.Errorf("unmeasured node = %v, want zero size", got)
	}

	m.SetMeasured(n, geom.Size{W: 120, H: 48})
	if got := m.Measure(n); got != (geom.Size{W: 120, H: 48}) {
		t.Errorf("Measure() = %v, want installed size", got)
	}
}

func TestMemoryMeasurer(t *testing.T) {
	m := NewMemory(geom.Size{W: 800, H: 600}).WithMeasurer(func(kind, markup string) geom.Size {
		return geom.Size{W: float64(len(markup)), H: 1}
	})

	n := m.CreateNode("div", nil)
	m.SetContent(n, "hello")

	if got := m.Measure(n); got != (geom.Size{W: 5, H: 1}) {
		t.Errorf("Measure() = %v, want measurer result", got)
	}
}

func TestMemoryContainerIsParent(t *testing.T) {
	m := NewMemory(geom.Size{W: 800, H: 600})

	panel := m.CreateNode("div", nil)
	m.SetMeasured(panel, geom.Size{W: 400, H: 300})
	child := m.CreateNode("div", panel)

	if got := m.Container(child); got != (geom.Size{W: 400, H: 300}) {
		t.Errorf("Container() = %v, want parent size", got)
	}
}

func TestMemoryOpacity(t *testing.T) {
	m := NewMemory(geom.Size{W: 800, H: 600})
	n := m.CreateNode("div", nil)

	if got := m.Opacity(n); got != 1 {
		t.Errorf("default opacity = %v, want 1", got)
	}

	m.SetStyle(n, "opacity", "0")
	if got := m.Opacity(n); got != 0 {
		t.Errorf("opacity = %v, want 0", got)
	}

	m.SetStyle(n, "opacity", "0.35")
	if got := m.Opacity(n); got != 0.35 {
		t.Errorf("opacity = %v, want 0.35", got)
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    geom.Point
	}{
		{name: "origin", p: geom.Point{}},
		{name: "positive", p: geom.Point{Left: 120.5, Top: 44}},
		{name: "negative", p: geom.Point{Left: -15, Top: -7.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTranslate(Translate(tt.p))
			if !ok {
				t.Fatal("ParseTranslate failed on Translate output")
			}
			if got != tt.p {
				t.Errorf("round trip = %v, want %v", got, tt.p)
			}
		})
	}
}

func TestParseTranslateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "rotate(45deg)", "translate(1px)", "translate(a,b)"} {
		if _, ok := ParseTranslate(s); ok {
			t.Errorf("ParseTranslate(%q) should fail", s)
		}
	}
}

func TestMemoryPosition(t *testing.T) {
	m := NewMemory(geom.Size{W: 800, H: 600})
	n := m.CreateNode("div", nil)

	if _, ok := m.Position(n); ok {
		t.Error("unplaced node should have no position")
	}

	m.SetStyle(n, "transform", Translate(geom.Point{Left: 40, Top: 25}))
	pos, ok := m.Position(n)
	if !ok {
		t.Fatal("placed node should report a position")
	}
	if pos != (geom.Point{Left: 40, Top: 25}) {
		t.Errorf("Position() = %v, want {40 25}", pos)
	}
}
