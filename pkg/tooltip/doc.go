// Package tooltip implements a positioned overlay engine: it keeps a
// lazily created overlay node docked to an anchor point with a chosen
// gravity, generates its content from a bound series datum, and manages
// the show/hide lifecycle with debounced transitions.
//
// # Placement
//
// Placement is gravity-driven. Each of the four cardinal gravities docks
// the overlay on one side of the anchor at a configurable distance,
// flips once to the opposite side when the container would overflow on
// the gravity axis, and clamps the orthogonal axis into the container.
// See [ComputeOffset] for the exact rules and [FinalPosition] for the
// final horizontal floor.
//
// # Scheduling
//
// Every placement cycle splits scene access into a read phase (measure
// the overlay, its container, and its current opacity) and a write phase
// (compute the offset and schedule exactly one transition). With the
// frame scheduler from package sched, reads from all pending cycles run
// before any writes, which keeps rapid pointer movement from thrashing
// host layout.
//
// # Transitions
//
// Show-after-hidden snaps instantly; moves while visible tween over
// [Tooltip.Duration]; hides wait [Tooltip.HideDelay] and are cancelled
// by any placement scheduled inside that window. Transitions run on the
// cooperative engine in package anim unless an [anim.Animator] override
// is installed.
//
// # Content
//
// The built-in generator renders the datum as a table: optional header,
// one row per displayable series entry (color swatch, key, value,
// optional trend cell, optional alert marker), optional footer. Every
// formatter is independently replaceable, or the whole generator can be
// swapped with [WithContentGenerator].
//
// The package is single-threaded by contract: a Tooltip, its scene, and
// its animator are driven from one logical thread of control.
package tooltip
