// Package render runs placement scenarios headlessly.
//
// # Overview
//
// A scenario (package io) describes one tooltip placement. This package
// executes it against an in-memory scene: bind the datum, place the
// overlay, drive every transition to completion, and hand the resulting
// document state to a sink. It provides:
//
//   - [Run]: execute one scenario and return the settled [Result]
//   - Content measurement heuristics for scenes with no layout host
//   - SVG snapshots (in the [svg] subpackage)
//
// # Measurement
//
// A real host measures the overlay after content is written. Headless
// runs have no such host, so the runner either takes the scenario's
// fixed overlay size or estimates one from the generated markup: the
// widest text line (display cells, wide runes counted double) times a
// nominal character width, plus per-row height. The estimate only has to
// be stable and plausible; placement maths is exercised identically
// either way.
//
// [svg]: github.com/hoverlay/hoverlay/pkg/render/svg
package render
