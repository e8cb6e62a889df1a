package scene

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hoverlay/hoverlay/pkg/geom"
)

// Nominal pixel geometry of one terminal cell. Placement runs in pixel
// coordinates; the terminal scene converts at the edges.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Terminal is a Scene that can draw itself into a terminal frame. It
// wraps [Memory] for document state and adds a cell-based View for TUI
// hosts: the overlay renders as a bordered box at its placed position,
// provided its opacity is above the visibility threshold.
type Terminal struct {
	*Memory
	cols, rows int

	borderStyle lipgloss.Style
}

// NewTerminal creates a terminal scene of cols x rows cells. Content is
// measured with a display-cell measurer, so wide runes count double.
func NewTerminal(cols, rows int) *Terminal {
	t := &Terminal{
		Memory:      NewMemory(geom.Size{W: float64(cols) * CellWidth, H: float64(rows) * CellHeight}),
		cols:        cols,
		rows:        rows,
		borderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
	t.WithMeasurer(cellMeasurer)
	return t
}

// WithBorderStyle overrides the lipgloss style applied to overlay
// borders in the view.
func (t *Terminal) WithBorderStyle(s lipgloss.Style) *Terminal {
	t.borderStyle = s
	return t
}

// Cols returns the viewport width in cells.
func (t *Terminal) Cols() int { return t.cols }

// Rows returns the viewport height in cells.
func (t *Terminal) Rows() int { return t.rows }

// CellAt converts a cell coordinate to the pixel point at its center.
func (t *Terminal) CellAt(col, row int) geom.Point {
	return geom.Point{
		Left: (float64(col) + 0.5) * CellWidth,
		Top:  (float64(row) + 0.5) * CellHeight,
	}
}

// cellMeasurer sizes content by its text lines: widest line in display
// cells plus the box border, converted to pixels.
func cellMeasurer(kind, markup string) geom.Size {
	widest, rows := 0, 0
	for _, line := range textLines(markup) {
		rows++
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	if rows == 0 {
		widest, rows = 1, 1
	}
	// +2 for the border cells on each axis.
	return geom.Size{
		W: float64(widest+2) * CellWidth,
		H: float64(rows+2) * CellHeight,
	}
}

// textLines flattens markup into plain text rows.
func textLines(markup string) []string {
	text := strings.NewReplacer("</tr>", "\n", "</thead>", "\n", "</div>", "\n").Replace(markup)

	var sb strings.Builder
	inTag := false
	for _, r := range text {
		switch {
		case r == '<':
			inTag = true
			sb.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// View draws the scene into a cols x rows frame: every node whose
// opacity exceeds the threshold renders as a bordered box at its placed
// cell position, clipped to the viewport.
func (t *Terminal) View() string {
	return t.ViewWithMarker(-1, -1, 0)
}

// ViewWithMarker draws the scene with a single marker rune placed at the
// given cell, on top of whatever occupies it. Out-of-range coordinates
// draw no marker.
func (t *Terminal) ViewWithMarker(col, row int, marker rune) string {
	grid := make([][]rune, t.rows)
	for i := range grid {
		grid[i] = make([]rune, t.cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for _, n := range t.root.children {
		t.drawNode(grid, n)
	}

	if marker != 0 {
		t.put(grid, row, col, marker)
	}

	lines := make([]string, t.rows)
	for i, row := range grid {
		lines[i] = styleBorders(string(row), t.borderStyle)
	}
	return strings.Join(lines, "\n")
}

const visibleThreshold = 0.5

func (t *Terminal) drawNode(grid [][]rune, n *MemNode) {
	if t.Opacity(n) < visibleThreshold {
		return
	}
	pos, ok := t.Position(n)
	if !ok {
		return
	}

	size := t.Measure(n)
	col := int(pos.Left / CellWidth)
	row := int(pos.Top / CellHeight)
	w := int(size.W / CellWidth)
	h := int(size.H / CellHeight)
	if w < 2 || h < 2 {
		return
	}

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			t.put(grid, row+r, col+c, boxRune(r, c, h, w))
		}
	}

	for i, line := range textLines(t.Content(n)) {
		if i >= h-2 {
			break
		}
		c := col + 1
		for _, ch := range line {
			if c >= col+w-1 {
				break
			}
			t.put(grid, row+1+i, c, ch)
			c += runewidth.RuneWidth(ch)
		}
	}
}

func (t *Terminal) put(grid [][]rune, row, col int, r rune) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return
	}
	grid[row][col] = r
}

func boxRune(r, c, h, w int) rune {
	switch {
	case r == 0 && c == 0:
		return '╭'
	case r == 0 && c == w-1:
		return '╮'
	case r == h-1 && c == 0:
		return '╰'
	case r == h-1 && c == w-1:
		return '╯'
	case r == 0 || r == h-1:
		return '─'
	case c == 0 || c == w-1:
		return '│'
	default:
		return ' '
	}
}

// styleBorders applies the border style to box-drawing runs in a line,
// leaving text cells unstyled.
func styleBorders(line string, style lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(style.Render(run.String()))
			run.Reset()
		}
	}
	for _, r := range line {
		if strings.ContainsRune("╭╮╰╯─│", r) {
			run.WriteRune(r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()
	return out.String()
}
