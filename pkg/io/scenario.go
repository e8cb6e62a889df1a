package io

import (
	"time"

	"github.com/hoverlay/hoverlay/pkg/errors"
	"github.com/hoverlay/hoverlay/pkg/geom"
	"github.com/hoverlay/hoverlay/pkg/tooltip"
)

// Scenario is one reproducible placement case.
type Scenario struct {
	// Name labels the scenario in output and logs.
	Name string `json:"name,omitempty"`

	// Container is the viewport the overlay is clamped into.
	Container geom.Size `json:"container"`

	// Anchor is the point the overlay docks to.
	Anchor geom.Point `json:"anchor"`

	// Overlay optionally fixes the overlay's measured size. Zero means
	// measure from content.
	Overlay geom.Size `json:"overlay,omitempty"`

	// Gravity is a gravity spelling ("n", "north", ...). Empty uses the
	// engine default.
	Gravity string `json:"gravity,omitempty"`

	// Distance is the anchor gap; nil uses the engine default.
	Distance *float64 `json:"distance,omitempty"`

	// SnapDistance is carried for round-trip fidelity only.
	SnapDistance *float64 `json:"snap_distance,omitempty"`

	// DurationMS and HideDelayMS override the transition timings,
	// in milliseconds.
	DurationMS  *int `json:"duration_ms,omitempty"`
	HideDelayMS *int `json:"hide_delay_ms,omitempty"`

	// Classes are extra overlay class names.
	Classes []string `json:"classes,omitempty"`

	// HeaderEnabled toggles the header row; nil uses the default.
	HeaderEnabled *bool `json:"header_enabled,omitempty"`

	// NegateTrend inverts the trend comparison.
	NegateTrend bool `json:"negate_trend,omitempty"`

	// Hidden renders the scenario in its hidden state.
	Hidden bool `json:"hidden,omitempty"`

	// Datum is the value bound for the render.
	Datum tooltip.Datum `json:"datum"`
}

// Validate checks the scenario's fields ahead of any rendering: gravity
// spelling, class names, swatch colors, and basic geometry. It returns
// the first problem found, wrapped with a structured code.
func (s *Scenario) Validate() error {
	if s.Container.W <= 0 || s.Container.H <= 0 {
		return errors.New(errors.ErrCodeInvalidScenario,
			"container must have positive dimensions, got %gx%g", s.Container.W, s.Container.H)
	}
	if s.Gravity != "" {
		if _, err := tooltip.ParseGravity(s.Gravity); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "scenario %q", s.Name)
		}
	}
	if s.Distance != nil && *s.Distance < 0 {
		return errors.New(errors.ErrCodeInvalidDistance, "distance must be non-negative, got %g", *s.Distance)
	}
	if err := errors.ValidateClassList(s.Classes); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScenario, err, "scenario %q", s.Name)
	}
	for _, e := range s.Datum.Series {
		if e.Color == "" {
			continue
		}
		if err := errors.ValidateColorSpec(e.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "series %q", e.Key)
		}
	}
	return nil
}

// Options translates the scenario's placement fields into tooltip
// options, leaving unset fields at the engine defaults. Validate first;
// Options assumes a valid scenario and ignores unparsable gravities.
func (s *Scenario) Options() []tooltip.Option {
	var opts []tooltip.Option

	if s.Gravity != "" {
		if g, err := tooltip.ParseGravity(s.Gravity); err == nil {
			opts = append(opts, tooltip.WithGravity(g))
		}
	}
	if s.Distance != nil {
		opts = append(opts, tooltip.WithDistance(*s.Distance))
	}
	if s.SnapDistance != nil {
		opts = append(opts, tooltip.WithSnapDistance(*s.SnapDistance))
	}
	if s.DurationMS != nil {
		opts = append(opts, tooltip.WithDuration(time.Duration(*s.DurationMS)*time.Millisecond))
	}
	if s.HideDelayMS != nil {
		opts = append(opts, tooltip.WithHideDelay(time.Duration(*s.HideDelayMS)*time.Millisecond))
	}
	if len(s.Classes) > 0 {
		opts = append(opts, tooltip.WithClasses(s.Classes...))
	}
	if s.HeaderEnabled != nil {
		opts = append(opts, tooltip.WithHeaderEnabled(*s.HeaderEnabled))
	}
	if s.NegateTrend {
		opts = append(opts, tooltip.WithNegateTrend(true))
	}
	return opts
}
