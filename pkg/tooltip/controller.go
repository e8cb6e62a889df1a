package tooltip

import (
	"time"

	"github.com/hoverlay/hoverlay/pkg/anim"
	"github.com/hoverlay/hoverlay/pkg/geom"
	"github.com/hoverlay/hoverlay/pkg/observability"
	"github.com/hoverlay/hoverlay/pkg/scene"
	"github.com/hoverlay/hoverlay/pkg/sched"
)

// invisibleOpacity is the near-zero threshold below which the overlay
// counts as not visible: a placement then snaps instead of animating, so
// the panel never slides in from stale coordinates.
const invisibleOpacity = 0.1

// PlacementState is the mutable placement configuration and position
// memory for one tooltip instance. It is created once per instance and
// persists for the instance's lifetime.
type PlacementState struct {
	// Gravity selects the docking side.
	Gravity Gravity

	// Distance is the gap between anchor and overlay edge, in the
	// direction the gravity dictates.
	Distance float64

	// SnapDistance is advertised for interface parity but not consulted
	// by the offset or placement algorithms (vestigial configuration in
	// the original layout; no snapping behavior is invented for it).
	SnapDistance float64

	// Hidden is the desired visibility. Transitions are driven by
	// changes to this flag, never by polling it.
	Hidden bool

	// LastPosition is the last applied absolute position, required as
	// the start value of move animations. It always holds the target of
	// the most recent placement, not any animated intermediate value.
	LastPosition geom.Point

	// HideDelay is the debounce before a hide takes effect.
	HideDelay time.Duration

	// Duration is the length of the move tween between two positions.
	Duration time.Duration
}

// controller owns the placement state and turns anchor updates into
// scheduled read and write phases.
type controller struct {
	sc        scene.Scene
	scheduler sched.Scheduler
	animator  anim.Animator
	state     PlacementState
}

// place measures the overlay and its container in the read phase, then in
// the write phase computes the gravity offset and issues exactly one
// transition:
//
//   - hidden: delay by HideDelay, then snap opacity to 0. The delay makes
//     quick re-shows cheap: a new place() before the delay elapses
//     interrupts the pending fade.
//   - visible but currently invisible (opacity below the epsilon): snap
//     to the new position with opacity 1, zero duration.
//   - visible: tween the translation from LastPosition to the new
//     position over Duration, raising opacity to 1 in the same
//     transition.
//
// LastPosition is updated to the just-computed target after the
// transition is scheduled, so the next call starts from the right place
// whether or not the animation finished. All reads complete before any
// write; a place() superseded by a newer one simply has its transition
// interrupted, so the most recent target always wins.
func (c *controller) place(node scene.Node, anchor geom.Point) {
	start := time.Now()
	observability.Placement().OnPlaceStart(node.ID(), string(c.state.Gravity))

	var overlaySize, containerSize geom.Size
	var opacity float64

	c.scheduler.Read(func() {
		overlaySize = c.sc.Measure(node)
		containerSize = c.sc.Container(node)
		opacity = c.sc.Opacity(node)
	})

	c.scheduler.Write(func() {
		offset := ComputeOffset(overlaySize, containerSize, anchor, c.state.Gravity, c.state.Distance)
		pos := FinalPosition(anchor, offset)
		snapped := true

		switch {
		case c.state.Hidden:
			c.animator.Animate(node, anim.Spec{
				From:  anim.Target{Pos: pos, Opacity: opacity},
				To:    anim.Target{Pos: pos, Opacity: 0},
				Delay: c.state.HideDelay,
			})

		case opacity < invisibleOpacity:
			c.animator.Animate(node, anim.Spec{
				To: anim.Target{Pos: pos, Opacity: 1},
			})

		default:
			snapped = false
			c.animator.Animate(node, anim.Spec{
				From:     anim.Target{Pos: c.state.LastPosition, Opacity: opacity},
				To:       anim.Target{Pos: pos, Opacity: 1},
				Duration: c.state.Duration,
			})
		}

		c.state.LastPosition = pos
		observability.Placement().OnPlaceComplete(node.ID(), string(c.state.Gravity),
			pos.Left, pos.Top, snapped, time.Since(start))
	})
}
