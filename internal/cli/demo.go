package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hoverlay/hoverlay/pkg/anim"
	"github.com/hoverlay/hoverlay/pkg/scene"
	"github.com/hoverlay/hoverlay/pkg/sched"
	"github.com/hoverlay/hoverlay/pkg/tooltip"
)

// demoCols/demoRows size the playground viewport in cells.
const (
	demoCols = 72
	demoRows = 20

	demoTick = 50 * time.Millisecond
)

// newDemoCmd creates the demo command: an interactive terminal
// playground driving the placement engine with a movable anchor.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive terminal playground for the placement engine",
		Long: `Demo opens a terminal playground: move the anchor with the arrow
keys, cycle gravity with g, toggle visibility with space, and watch the
overlay flip and clamp against the viewport edges.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(newDemoModel(), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// tickMsg advances the animation clock.
type tickMsg time.Time

// demoModel is the bubbletea model for the playground. The scheduler
// batches each placement's read and write phases into the next tick, and
// the engine tweens are stepped on the same tick, keeping the whole loop
// cooperative.
type demoModel struct {
	term  *scene.Terminal
	frame *sched.Frame
	eng   *anim.Engine
	tip   *tooltip.Tooltip

	col, row int
	gravity  int
	hidden   bool
}

var demoGravities = []tooltip.Gravity{
	tooltip.GravityWest,
	tooltip.GravityNorth,
	tooltip.GravityEast,
	tooltip.GravitySouth,
	tooltip.GravityCenter,
}

func newDemoModel() demoModel {
	term := scene.NewTerminal(demoCols, demoRows)
	frame := sched.NewFrame()
	eng := anim.NewEngine(term)

	tip := tooltip.New(term,
		tooltip.WithScheduler(frame),
		tooltip.WithAnimator(eng),
		tooltip.WithGravity(demoGravities[0]),
		tooltip.WithDistance(2*scene.CellWidth),
	)
	tip.SetData(&tooltip.Datum{
		Header: "Playground",
		Series: []tooltip.SeriesEntry{
			{Key: "Requests", Value: tooltip.Float(1234.5), Color: "#1f77b4"},
			{Key: "Errors", Value: tooltip.Float(3), RefValue: tooltip.Float(12), Color: "#d62728"},
		},
	})

	m := demoModel{
		term:  term,
		frame: frame,
		eng:   eng,
		tip:   tip,
		col:   demoCols / 2,
		row:   demoRows / 2,
	}
	m.place()
	return m
}

func (m demoModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(demoTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			m.row = clampCell(m.row-1, demoRows)
			m.place()
		case "down":
			m.row = clampCell(m.row+1, demoRows)
			m.place()
		case "left":
			m.col = clampCell(m.col-2, demoCols)
			m.place()
		case "right":
			m.col = clampCell(m.col+2, demoCols)
			m.place()
		case "g":
			m.gravity = (m.gravity + 1) % len(demoGravities)
			m.tip.SetGravity(demoGravities[m.gravity])
			m.place()
		case " ":
			m.hidden = !m.hidden
			m.tip.SetHidden(m.hidden)
		}

	case tickMsg:
		m.frame.Flush()
		m.eng.Step(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// place re-renders at the current anchor cell.
func (m *demoModel) place() {
	m.tip.RenderAt(&tooltip.Event{Pos: m.term.CellAt(m.col, m.row)})
}

func (m demoModel) View() string {
	status := fmt.Sprintf("gravity %s · anchor (%d, %d)",
		demoGravities[m.gravity], m.col, m.row)
	if m.hidden {
		status += " · " + StyleWarning.Render("hidden")
	}

	return StyleTitle.Render("hoverlay demo") + "  " + StyleDim.Render(status) + "\n" +
		StyleDim.Render("←↑↓→ move  g gravity  space hide/show  q quit") + "\n" +
		m.viewport()
}

// viewport draws the scene with the anchor marked.
func (m demoModel) viewport() string {
	return m.term.ViewWithMarker(m.col, m.row, '✛')
}

func clampCell(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}
