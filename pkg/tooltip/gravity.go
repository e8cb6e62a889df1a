package tooltip

import (
	"strings"

	"github.com/hoverlay/hoverlay/pkg/errors"
	"github.com/hoverlay/hoverlay/pkg/geom"
)

// Gravity names the side of the anchor point the overlay docks to.
// The value is the side the overlay sits on relative to the anchor, so
// GravityWest places the panel to the right of the pointer in a chart
// whose west edge hosts the axis.
type Gravity string

// Supported gravity modes.
const (
	GravityNorth  Gravity = "north"
	GravitySouth  Gravity = "south"
	GravityEast   Gravity = "east"
	GravityWest   Gravity = "west"
	GravityCenter Gravity = "center"

	// GravityNone is the fallback for unrecognized values; it yields a
	// zero offset rather than an error.
	GravityNone Gravity = ""
)

// gravityAliases maps accepted spellings to canonical gravities.
var gravityAliases = map[string]Gravity{
	"n": GravityNorth, "north": GravityNorth,
	"s": GravitySouth, "south": GravitySouth,
	"e": GravityEast, "east": GravityEast,
	"w": GravityWest, "west": GravityWest,
	"c": GravityCenter, "center": GravityCenter,
}

// ParseGravity parses a gravity spelling ("n", "north", ...) for
// configuration surfaces. Unlike the render path, which silently treats
// unknown gravities as a zero offset, ParseGravity reports bad input.
func ParseGravity(s string) (Gravity, error) {
	if g, ok := gravityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return g, nil
	}
	return GravityNone, errors.New(errors.ErrCodeInvalidGravity, "unknown gravity: %q", s)
}

// normalizeGravity maps any accepted spelling to its canonical form,
// falling back to GravityNone.
func normalizeGravity(g Gravity) Gravity {
	if canonical, ok := gravityAliases[strings.ToLower(string(g))]; ok {
		return canonical
	}
	return GravityNone
}

// pointerGlyphPad approximates the pointer glyph height so a north-docked
// overlay does not sit directly under the cursor.
const pointerGlyphPad = 5

// ComputeOffset maps overlay and container geometry to the offset of the
// overlay's top-left corner relative to the anchor point.
//
// Each gravity starts from a base offset and flips to the opposite side
// in a single step when the overlay would overflow the container on the
// gravity axis. After the flip check, only the orthogonal axis is clamped
// into the container; the flip is never re-examined. An unrecognized
// gravity yields a zero offset.
//
// Clamping is against the container's visible bounds, never any
// scrollable extent. Add the result to the anchor with [FinalPosition]
// to obtain the absolute position.
func ComputeOffset(overlay, container geom.Size, anchor geom.Point, g Gravity, distance float64) geom.Point {
	w, h := overlay.W, overlay.H
	cw, ch := container.W, container.H

	var off geom.Point
	switch normalizeGravity(g) {
	case GravityEast:
		off = geom.Point{Left: -w - distance, Top: -h / 2}
		if anchor.Left+off.Left < 0 {
			off.Left = distance
		}
		off.Top = clampAxis(off.Top, anchor.Top, h, ch)

	case GravityWest:
		off = geom.Point{Left: distance, Top: -h / 2}
		if anchor.Left+off.Left+w > cw {
			off.Left = -w - distance
		}
		off.Top = clampAxis(off.Top, anchor.Top, h, ch)

	case GravityNorth:
		off = geom.Point{Left: -w/2 - pointerGlyphPad, Top: distance}
		if anchor.Top+off.Top+h > ch {
			off.Top = -h - distance
		}
		off.Left = clampAxis(off.Left, anchor.Left, w, cw)

	case GravitySouth:
		off = geom.Point{Left: -w / 2, Top: -h - distance}
		if anchor.Top+off.Top < 0 {
			off.Top = distance
		}
		off.Left = clampAxis(off.Left, anchor.Left, w, cw)

	case GravityCenter:
		off = geom.Point{Left: -w / 2, Top: -h / 2}
	}

	return off
}

// clampAxis keeps anchor+off within [0, extent-span] on one axis.
// The upper bound wins if the span does not fit at all.
func clampAxis(off, anchor, span, extent float64) float64 {
	if anchor+off < 0 {
		off = -anchor
	}
	if anchor+off+span > extent {
		off = extent - anchor - span
	}
	return off
}

// FinalPosition combines the anchor and a computed offset into the
// absolute top-left position of the overlay.
//
// The horizontal axis is floored at zero so the overlay's left edge never
// leaves the container. The vertical axis deliberately carries no such
// floor: east/west gravities already clamp it in ComputeOffset, and
// north/south/center are left unfloored for parity with the observed
// behavior of the original layout (a known asymmetry, kept as-is).
func FinalPosition(anchor, offset geom.Point) geom.Point {
	left := anchor.Left + offset.Left
	if left < 0 {
		left = 0
	}
	return geom.Point{Left: left, Top: anchor.Top + offset.Top}
}
