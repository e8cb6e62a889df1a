package scene

import (
	"strings"
	"testing"

	"github.com/hoverlay/hoverlay/pkg/geom"
)

func TestTerminalViewport(t *testing.T) {
	term := NewTerminal(80, 24)
	if got := term.Container(term.CreateNode("div", nil)); got != (geom.Size{W: 640, H: 384}) {
		t.Errorf("viewport = %+v, want 640x384 px", got)
	}
	if term.Cols() != 80 || term.Rows() != 24 {
		t.Errorf("dimensions = %dx%d, want 80x24", term.Cols(), term.Rows())
	}
}

func TestCellAt(t *testing.T) {
	term := NewTerminal(80, 24)
	got := term.CellAt(10, 5)
	want := geom.Point{Left: 84, Top: 88}
	if got != want {
		t.Errorf("CellAt(10,5) = %+v, want %+v", got, want)
	}
}

func TestCellMeasurer(t *testing.T) {
	got := cellMeasurer("div", "<tr><td>abcd</td></tr>")
	// One text row plus borders: (4+2) x (1+2) cells.
	want := geom.Size{W: 6 * CellWidth, H: 3 * CellHeight}
	if got != want {
		t.Errorf("cellMeasurer = %+v, want %+v", got, want)
	}

	if empty := cellMeasurer("div", ""); empty.Empty() {
		t.Errorf("empty content measured empty: %+v", empty)
	}
}

func TestTerminalViewDrawsVisibleBox(t *testing.T) {
	term := NewTerminal(40, 10)
	n := term.CreateNode("div", nil)
	term.SetContent(n, "<tr><td>hi</td></tr>")
	term.SetStyle(n, "transform", Translate(geom.Point{Left: 8, Top: 16}))
	term.SetStyle(n, "opacity", "1")

	view := term.View()
	if !strings.Contains(view, "╭") || !strings.Contains(view, "╯") {
		t.Errorf("view missing box borders:\n%s", view)
	}
	if !strings.Contains(view, "hi") {
		t.Errorf("view missing content text:\n%s", view)
	}

	lines := strings.Split(view, "\n")
	if len(lines) != 10 {
		t.Errorf("view has %d lines, want 10", len(lines))
	}
}

func TestTerminalViewHidesTransparentBox(t *testing.T) {
	term := NewTerminal(40, 10)
	n := term.CreateNode("div", nil)
	term.SetContent(n, "<tr><td>hi</td></tr>")
	term.SetStyle(n, "transform", Translate(geom.Point{Left: 8, Top: 16}))
	term.SetStyle(n, "opacity", "0.1")

	if view := term.View(); strings.Contains(view, "╭") {
		t.Errorf("transparent box still drawn:\n%s", view)
	}
}

func TestTerminalViewClipsAtEdges(t *testing.T) {
	term := NewTerminal(10, 4)
	n := term.CreateNode("div", nil)
	term.SetContent(n, "<tr><td>overflowing label</td></tr>")
	term.SetStyle(n, "transform", Translate(geom.Point{Left: -16, Top: -16}))
	term.SetStyle(n, "opacity", "1")

	// Must not panic, and stays 10 cells wide.
	for i, line := range strings.Split(term.View(), "\n") {
		plain := stripStyle(line)
		if w := len([]rune(plain)); w != 10 {
			t.Errorf("line %d is %d cells wide, want 10: %q", i, w, plain)
		}
	}
}

// stripStyle removes ANSI escape sequences from a styled line.
func stripStyle(s string) string {
	var out strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
