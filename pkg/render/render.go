package render

import (
	"time"

	"github.com/hoverlay/hoverlay/pkg/anim"
	"github.com/hoverlay/hoverlay/pkg/errors"
	"github.com/hoverlay/hoverlay/pkg/geom"
	scenarioio "github.com/hoverlay/hoverlay/pkg/io"
	"github.com/hoverlay/hoverlay/pkg/scene"
	"github.com/hoverlay/hoverlay/pkg/tooltip"
)

// Result is the settled document state after a scenario run.
type Result struct {
	// Scenario is the input the run executed.
	Scenario *scenarioio.Scenario

	// Scene holds the full document for sinks that want more than the
	// summary fields below.
	Scene *scene.Memory

	// Tip is the tooltip instance, still bound to Scene.
	Tip *tooltip.Tooltip

	// Position is the overlay's settled top-left corner.
	Position geom.Point

	// Size is the overlay's measured size.
	Size geom.Size

	// Opacity is the overlay's settled opacity (0 for hidden runs).
	Opacity float64

	// Content is the generated markup.
	Content string
}

// Run executes one scenario to completion: validate, bind, place, and
// step every transition until none remain. The returned result reflects
// the settled state, so a hidden scenario reports opacity zero even
// though the live path would wait out the hide delay first.
func Run(s *scenarioio.Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sc := scene.NewMemory(s.Container)
	if s.Overlay.Empty() {
		sc.WithMeasurer(EstimateMeasurer())
	} else {
		sc.WithMeasurer(fixedMeasurer(s.Overlay))
	}

	eng := anim.NewEngine(sc)
	opts := append(s.Options(), tooltip.WithAnimator(eng))
	tip := tooltip.New(sc, opts...)

	tip.SetData(&s.Datum)
	tip.RenderAt(&tooltip.Event{Pos: s.Anchor})
	if s.Hidden {
		tip.SetHidden(true)
	}
	settle(eng, tip)

	node := tip.Node()
	if node == nil {
		return nil, errors.New(errors.ErrCodeInvalidScenario,
			"scenario %q has nothing to render: datum has no series", s.Name)
	}
	pos, _ := sc.Position(node)
	return &Result{
		Scenario: s,
		Scene:    sc,
		Tip:      tip,
		Position: pos,
		Size:     sc.Measure(node),
		Opacity:  sc.Opacity(node),
		Content:  sc.Content(node),
	}, nil
}

// settle drives the cooperative engine with synthetic time until every
// transition has finished. Two generous jumps cover the worst case of a
// fresh tween chained behind a full hide delay.
func settle(eng *anim.Engine, tip *tooltip.Tooltip) {
	horizon := tip.Duration() + tip.HideDelay() + time.Second
	now := time.Now()
	for i := 0; i < 4; i++ {
		if eng.Step(now) == 0 {
			return
		}
		now = now.Add(horizon)
	}
}
