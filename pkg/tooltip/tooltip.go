package tooltip

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/hoverlay/hoverlay/pkg/anim"
	"github.com/hoverlay/hoverlay/pkg/cache"
	"github.com/hoverlay/hoverlay/pkg/geom"
	"github.com/hoverlay/hoverlay/pkg/observability"
	"github.com/hoverlay/hoverlay/pkg/scene"
	"github.com/hoverlay/hoverlay/pkg/sched"
)

// Event is the anchor context a render is triggered with, typically a
// pointer-move event translated into scene coordinates.
type Event struct {
	Pos geom.Point
}

// PositionResolver converts the triggering event into the raw anchor
// point. The default resolver returns the event position, or the origin
// when there is no active event.
type PositionResolver func(ev *Event) geom.Point

// DefaultPositionResolver anchors at the event position, or {0,0} when
// no event is active.
func DefaultPositionResolver(ev *Event) geom.Point {
	if ev == nil {
		return geom.Point{}
	}
	return ev.Pos
}

// Default timing and placement constants.
const (
	DefaultDistance  = 25.0
	DefaultDuration  = 100 * time.Millisecond
	DefaultHideDelay = 400 * time.Millisecond

	// contentTTL bounds how long memoized markup stays cached.
	contentTTL = 30 * time.Second
)

// Tooltip is a positioned overlay instance: it binds a datum, renders it
// into a lazily created overlay node, and keeps that node docked near the
// anchor point without overflowing the container.
//
// A Tooltip is single-threaded by contract: all methods must be called
// from the one logical thread of control that owns the scene.
type Tooltip struct {
	sc        scene.Scene
	scheduler sched.Scheduler
	ctrl      controller
	overlay   overlay

	enabled       bool
	headerEnabled bool
	negateTrend   bool
	container     scene.Node

	headerFmt HeaderFormatter
	footerFmt FooterFormatter
	keyFmt    KeyFormatter
	valueFmt  ValueFormatter
	refFmt    RefFormatter
	alert     AlertFunc

	generator ContentGenerator // nil means the built-in generator
	resolver  PositionResolver

	contentCache cache.Cache
	cacheVersion string

	data  *Datum
	event *Event
}

// Option configures a Tooltip at construction.
type Option func(*Tooltip)

// WithGravity sets the docking side.
func WithGravity(g Gravity) Option { return func(t *Tooltip) { t.ctrl.state.Gravity = g } }

// WithDistance sets the anchor-to-overlay gap.
func WithDistance(d float64) Option { return func(t *Tooltip) { t.ctrl.state.Distance = d } }

// WithSnapDistance sets the vestigial snap distance (kept for interface
// parity; not consulted by placement).
func WithSnapDistance(d float64) Option { return func(t *Tooltip) { t.ctrl.state.SnapDistance = d } }

// WithDuration sets the move-tween duration.
func WithDuration(d time.Duration) Option { return func(t *Tooltip) { t.ctrl.state.Duration = d } }

// WithHideDelay sets the hide debounce delay.
func WithHideDelay(d time.Duration) Option { return func(t *Tooltip) { t.ctrl.state.HideDelay = d } }

// WithClasses appends extra class names to the overlay node.
func WithClasses(classes ...string) Option {
	return func(t *Tooltip) { t.overlay.classes = classes }
}

// WithContainer sets the chart container node the overlay attaches to
// and is clamped against. nil uses the scene's default root.
func WithContainer(n scene.Node) Option { return func(t *Tooltip) { t.container = n } }

// WithScheduler replaces the default immediate scheduler, typically with
// a frame scheduler flushed once per animation frame.
func WithScheduler(s sched.Scheduler) Option {
	return func(t *Tooltip) {
		t.scheduler = s
		t.ctrl.scheduler = s
	}
}

// WithAnimator replaces the default tween engine.
func WithAnimator(a anim.Animator) Option { return func(t *Tooltip) { t.ctrl.animator = a } }

// WithEnabled toggles the instance; a disabled tooltip renders nothing.
func WithEnabled(enabled bool) Option { return func(t *Tooltip) { t.enabled = enabled } }

// WithHeaderEnabled toggles the header row.
func WithHeaderEnabled(enabled bool) Option { return func(t *Tooltip) { t.headerEnabled = enabled } }

// WithNegateTrend inverts the usual "higher value is positive" trend
// comparison.
func WithNegateTrend(negate bool) Option { return func(t *Tooltip) { t.negateTrend = negate } }

// WithHeaderFormatter overrides the header formatter.
func WithHeaderFormatter(f HeaderFormatter) Option { return func(t *Tooltip) { t.headerFmt = f } }

// WithFooterFormatter overrides the footer formatter.
func WithFooterFormatter(f FooterFormatter) Option { return func(t *Tooltip) { t.footerFmt = f } }

// WithKeyFormatter overrides the key formatter.
func WithKeyFormatter(f KeyFormatter) Option { return func(t *Tooltip) { t.keyFmt = f } }

// WithValueFormatter overrides the value formatter.
func WithValueFormatter(f ValueFormatter) Option { return func(t *Tooltip) { t.valueFmt = f } }

// WithRefFormatter overrides the reference/trend formatter.
func WithRefFormatter(f RefFormatter) Option { return func(t *Tooltip) { t.refFmt = f } }

// WithAlert installs the predicate deciding which rows get an alert
// marker, evaluated against each entry's opaque Data.
func WithAlert(f AlertFunc) Option { return func(t *Tooltip) { t.alert = f } }

// WithContentGenerator substitutes the content generator wholesale. An
// empty result from the generator leaves the overlay content untouched.
func WithContentGenerator(g ContentGenerator) Option { return func(t *Tooltip) { t.generator = g } }

// WithPositionResolver substitutes the anchor resolver.
func WithPositionResolver(r PositionResolver) Option { return func(t *Tooltip) { t.resolver = r } }

// WithContentCache memoizes built-in content generation through c.
// version must change whenever the caller swaps formatters, since
// functions cannot participate in the cache key.
func WithContentCache(c cache.Cache, version string) Option {
	return func(t *Tooltip) {
		t.contentCache = c
		t.cacheVersion = version
	}
}

// New creates a tooltip bound to the given scene.
func New(sc scene.Scene, opts ...Option) *Tooltip {
	t := &Tooltip{
		sc:            sc,
		scheduler:     sched.NewImmediate(),
		enabled:       true,
		headerEnabled: true,
		headerFmt:     DefaultHeaderFormatter,
		footerFmt:     DefaultFooterFormatter,
		keyFmt:        DefaultKeyFormatter,
		valueFmt:      DefaultValueFormatter,
		refFmt:        DefaultRefFormatter,
		resolver:      DefaultPositionResolver,
	}
	t.overlay.sc = sc
	t.ctrl = controller{
		sc:        sc,
		scheduler: t.scheduler,
		state: PlacementState{
			Gravity:   GravityWest,
			Distance:  DefaultDistance,
			Duration:  DefaultDuration,
			HideDelay: DefaultHideDelay,
		},
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.ctrl.animator == nil {
		t.ctrl.animator = anim.NewEngine(sc)
	}
	return t
}

// Render runs one render cycle: resolve the anchor, regenerate content,
// and re-place the overlay. It is a silent no-op when the instance is
// disabled or the bound datum has no series, leaving both the overlay
// content and the hidden state untouched.
func (t *Tooltip) Render() {
	if !t.enabled {
		observability.Placement().OnRenderSkipped(t.overlay.ID(), "disabled")
		return
	}
	if !t.data.renderable() {
		observability.Placement().OnRenderSkipped(t.overlay.ID(), "no displayable series")
		return
	}

	node := t.overlay.ensure(t.container)

	// Content is written before the placement cycle is scheduled so the
	// read phase measures the overlay at its new size.
	if content := t.content(t.data); content != "" {
		t.sc.SetContent(node, content)
	}

	t.ctrl.place(node, t.resolver(t.event))
}

// RenderAt stores the triggering event and renders.
func (t *Tooltip) RenderAt(ev *Event) {
	t.event = ev
	t.Render()
}

// content produces the markup for the datum, through the override when
// one is installed, otherwise through the built-in generator with
// optional memoization.
func (t *Tooltip) content(d *Datum) string {
	if t.generator != nil {
		return t.generator(d)
	}

	cfg := contentConfig{
		headerEnabled: t.headerEnabled,
		negateTrend:   t.negateTrend,
		header:        t.headerFmt,
		footer:        t.footerFmt,
		key:           t.keyFmt,
		value:         t.valueFmt,
		ref:           t.refFmt,
		alert:         t.alert,
	}
	rows := len(filterSeries(d.Series))

	if t.contentCache == nil {
		observability.Content().OnContentGenerated(t.overlay.ID(), rows, false)
		return renderHTML(d, cfg)
	}

	ctx := context.Background()
	key := cache.ContentKey(d, fmt.Sprintf("%s|header=%t|negate=%t", t.cacheVersion, t.headerEnabled, t.negateTrend))
	if data, ok, err := t.contentCache.Get(ctx, key); err == nil && ok {
		observability.Content().OnContentGenerated(t.overlay.ID(), rows, true)
		return string(data)
	}

	out := renderHTML(d, cfg)
	_ = t.contentCache.Set(ctx, key, []byte(out), contentTTL)
	observability.Content().OnContentGenerated(t.overlay.ID(), rows, false)
	return out
}

// SetData binds a new datum and re-renders when it actually changed.
func (t *Tooltip) SetData(d *Datum) {
	if reflect.DeepEqual(t.data, d) {
		return
	}
	t.data = d
	t.Render()
}

// Data returns the currently bound datum.
func (t *Tooltip) Data() *Datum { return t.data }

// SetHidden flips the desired visibility and re-renders only when the
// value actually changes; redundant sets are no-ops by design, since
// transitions are driven by the change itself.
func (t *Tooltip) SetHidden(hidden bool) {
	if t.ctrl.state.Hidden == hidden {
		return
	}
	t.ctrl.state.Hidden = hidden
	t.Render()
}

// Hidden returns the desired visibility flag.
func (t *Tooltip) Hidden() bool { return t.ctrl.state.Hidden }

// SetGravity sets the docking side.
func (t *Tooltip) SetGravity(g Gravity) { t.ctrl.state.Gravity = g }

// Gravity returns the docking side.
func (t *Tooltip) Gravity() Gravity { return t.ctrl.state.Gravity }

// SetDistance sets the anchor-to-overlay gap.
func (t *Tooltip) SetDistance(d float64) { t.ctrl.state.Distance = d }

// Distance returns the anchor-to-overlay gap.
func (t *Tooltip) Distance() float64 { return t.ctrl.state.Distance }

// SetSnapDistance sets the vestigial snap distance.
func (t *Tooltip) SetSnapDistance(d float64) { t.ctrl.state.SnapDistance = d }

// SnapDistance returns the vestigial snap distance.
func (t *Tooltip) SnapDistance() float64 { return t.ctrl.state.SnapDistance }

// SetDuration sets the move-tween duration.
func (t *Tooltip) SetDuration(d time.Duration) { t.ctrl.state.Duration = d }

// Duration returns the move-tween duration.
func (t *Tooltip) Duration() time.Duration { return t.ctrl.state.Duration }

// SetHideDelay sets the hide debounce delay.
func (t *Tooltip) SetHideDelay(d time.Duration) { t.ctrl.state.HideDelay = d }

// HideDelay returns the hide debounce delay.
func (t *Tooltip) HideDelay() time.Duration { return t.ctrl.state.HideDelay }

// SetClasses replaces the extra overlay classes, rewriting the class
// attribute if the node already exists.
func (t *Tooltip) SetClasses(classes ...string) {
	t.overlay.classes = classes
	t.overlay.applyClasses()
}

// Classes returns the extra overlay classes.
func (t *Tooltip) Classes() []string { return t.overlay.classes }

// SetContainer changes the chart container for future overlay creation.
// It has no effect on an overlay that already exists.
func (t *Tooltip) SetContainer(n scene.Node) { t.container = n }

// Container returns the configured chart container.
func (t *Tooltip) Container() scene.Node { return t.container }

// SetEnabled toggles the instance.
func (t *Tooltip) SetEnabled(enabled bool) { t.enabled = enabled }

// Enabled reports whether the instance renders at all.
func (t *Tooltip) Enabled() bool { return t.enabled }

// SetNegateTrend inverts the trend comparison.
func (t *Tooltip) SetNegateTrend(negate bool) { t.negateTrend = negate }

// NegateTrend reports whether the trend comparison is inverted.
func (t *Tooltip) NegateTrend() bool { return t.negateTrend }

// SetHeaderEnabled toggles the header row.
func (t *Tooltip) SetHeaderEnabled(enabled bool) { t.headerEnabled = enabled }

// HeaderEnabled reports whether the header row renders.
func (t *Tooltip) HeaderEnabled() bool { return t.headerEnabled }

// SetHeaderFormatter overrides the header formatter.
func (t *Tooltip) SetHeaderFormatter(f HeaderFormatter) { t.headerFmt = f }

// SetFooterFormatter overrides the footer formatter.
func (t *Tooltip) SetFooterFormatter(f FooterFormatter) { t.footerFmt = f }

// SetKeyFormatter overrides the key formatter.
func (t *Tooltip) SetKeyFormatter(f KeyFormatter) { t.keyFmt = f }

// SetValueFormatter overrides the value formatter.
func (t *Tooltip) SetValueFormatter(f ValueFormatter) { t.valueFmt = f }

// SetRefFormatter overrides the reference/trend formatter.
func (t *Tooltip) SetRefFormatter(f RefFormatter) { t.refFmt = f }

// SetContentGenerator substitutes the content generator.
func (t *Tooltip) SetContentGenerator(g ContentGenerator) { t.generator = g }

// SetPositionResolver substitutes the anchor resolver.
func (t *Tooltip) SetPositionResolver(r PositionResolver) { t.resolver = r }

// Node returns the live overlay node, or nil before the first render.
func (t *Tooltip) Node() scene.Node { return t.overlay.Node() }

// ID returns the overlay instance id, or "" before the first render.
func (t *Tooltip) ID() string { return t.overlay.ID() }

// LastPosition returns the most recently applied absolute position.
func (t *Tooltip) LastPosition() geom.Point { return t.ctrl.state.LastPosition }

// State returns a copy of the placement state, for inspection.
func (t *Tooltip) State() PlacementState { return t.ctrl.state }
