// Package anim provides the transition primitive the placement engine
// hands position changes to: a small tween engine that interpolates a 2D
// translation and an opacity value over a duration, with an optional
// start delay.
//
// The engine is cooperative. Nothing runs in the background; the owner
// advances time explicitly with [Engine.Step], typically once per frame
// tick. This keeps the package free of goroutines and makes transitions
// fully deterministic under test.
//
// # Interrupt semantics
//
// At most one transition is active per node. Starting a new transition on
// a node interrupts the previous one in place: the old tween stops
// applying and the node keeps whatever values were last written. Nothing
// is ever queued behind an in-flight transition.
//
// # Snap semantics
//
// A spec with zero delay and zero duration is applied synchronously
// inside [Engine.Animate], so instant placement does not wait for the
// next tick. A spec with a delay but zero duration applies the target in
// a single write once the delay elapses (delay-then-snap).
package anim

import (
	"strconv"
	"time"

	"github.com/hoverlay/hoverlay/pkg/geom"
	"github.com/hoverlay/hoverlay/pkg/observability"
	"github.com/hoverlay/hoverlay/pkg/scene"
)

// Target is one endpoint of a transition.
type Target struct {
	Pos     geom.Point
	Opacity float64
}

// Spec describes a transition between two targets.
type Spec struct {
	From, To Target
	Delay    time.Duration
	Duration time.Duration
}

// Handle controls an in-flight transition.
type Handle interface {
	// Cancel stops the transition. Values already written stay as they
	// are; no further writes happen on its behalf.
	Cancel()

	// Done reports whether the transition has finished or been cancelled.
	Done() bool
}

// Animator starts transitions on scene nodes.
type Animator interface {
	// Animate starts a transition on n, interrupting any transition
	// currently active on the same node.
	Animate(n scene.Node, s Spec) Handle
}

// Engine is the clock-stepped Animator implementation.
// It is not goroutine-safe; drive it from the UI thread of control.
type Engine struct {
	sc     scene.Scene
	active map[string]*tween
}

type tween struct {
	engine  *Engine
	node    scene.Node
	spec    Spec
	started bool
	start   time.Time
	done    bool
}

// NewEngine creates a tween engine writing through sc.
func NewEngine(sc scene.Scene) *Engine {
	return &Engine{
		sc:     sc,
		active: make(map[string]*tween),
	}
}

// Animate starts a transition per the package interrupt and snap rules.
func (e *Engine) Animate(n scene.Node, s Spec) Handle {
	if prev, ok := e.active[n.ID()]; ok {
		prev.done = true
		delete(e.active, n.ID())
		observability.Animation().OnTransitionInterrupt(n.ID())
	}

	tw := &tween{engine: e, node: n, spec: s}
	observability.Animation().OnTransitionStart(n.ID(), s.Duration)

	if s.Delay <= 0 && s.Duration <= 0 {
		e.apply(n, s.To)
		tw.done = true
		observability.Animation().OnTransitionDone(n.ID())
		return tw
	}

	e.active[n.ID()] = tw
	return tw
}

// Step advances every active transition to the given time, applying
// interpolated values through the scene. It returns the number of
// transitions still active afterwards.
func (e *Engine) Step(now time.Time) int {
	for id, tw := range e.active {
		if !tw.started {
			tw.started = true
			tw.start = now
		}

		elapsed := now.Sub(tw.start)
		if elapsed < tw.spec.Delay {
			continue
		}

		if tw.spec.Duration <= 0 {
			e.apply(tw.node, tw.spec.To)
			tw.done = true
			delete(e.active, id)
			observability.Animation().OnTransitionDone(id)
			continue
		}

		p := float64(elapsed-tw.spec.Delay) / float64(tw.spec.Duration)
		if p >= 1 {
			e.apply(tw.node, tw.spec.To)
			tw.done = true
			delete(e.active, id)
			observability.Animation().OnTransitionDone(id)
			continue
		}

		e.apply(tw.node, Target{
			Pos:     tw.spec.From.Pos.Lerp(tw.spec.To.Pos, p),
			Opacity: tw.spec.From.Opacity + (tw.spec.To.Opacity-tw.spec.From.Opacity)*p,
		})
	}
	return len(e.active)
}

// Active returns the number of in-flight transitions.
func (e *Engine) Active() int { return len(e.active) }

func (e *Engine) apply(n scene.Node, t Target) {
	e.sc.SetStyle(n, "transform", scene.Translate(t.Pos))
	e.sc.SetStyle(n, "opacity", strconv.FormatFloat(t.Opacity, 'f', -1, 64))
}

// Cancel stops the tween.
func (t *tween) Cancel() {
	if t.done {
		return
	}
	t.done = true
	delete(t.engine.active, t.node.ID())
	observability.Animation().OnTransitionInterrupt(t.node.ID())
}

// Done reports whether the tween has finished or been cancelled.
func (t *tween) Done() bool { return t.done }

// Ensure Engine implements Animator.
var _ Animator = (*Engine)(nil)
