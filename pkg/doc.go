// Package pkg provides the core libraries for Hoverlay positioned overlays.
//
// # Overview
//
// Hoverlay keeps a tooltip-style overlay docked next to an anchor point:
// gravity-based placement with overflow flipping and clamping, debounced
// show/hide transitions, and series-row content generation. The pkg
// directory is organized into three main areas:
//
//  1. Engine - placement and transitions ([tooltip], [geom], [scene], [sched], [anim])
//  2. Tooling - headless execution ([io], [render])
//  3. Infrastructure - ambient concerns ([errors], [cache], [observability], [buildinfo])
//
// # Architecture
//
// The typical data flow through a render cycle:
//
//	Datum + Event
//	     ↓
//	[tooltip] package (content generation, lifecycle)
//	     ↓
//	[sched] package (read phase: measure; write phase: mutate)
//	     ↓
//	[anim] package (snap or tween the transform and opacity)
//	     ↓
//	[scene] implementation (host document or in-memory)
//
// # Quick Start
//
// Bind a datum and keep the overlay docked to the pointer:
//
//	sc := scene.NewMemory(geom.Size{W: 800, H: 600})
//	tip := tooltip.New(sc,
//	    tooltip.WithGravity(tooltip.GravityWest),
//	    tooltip.WithDistance(25),
//	)
//
//	tip.SetData(&tooltip.Datum{
//	    Header: "March",
//	    Series: []tooltip.SeriesEntry{
//	        {Key: "Requests", Value: tooltip.Float(1234.5), Color: "#1f77b4"},
//	    },
//	})
//	tip.RenderAt(&tooltip.Event{Pos: geom.Point{Left: 200, Top: 150}})
//
// # Main Packages
//
// [tooltip] - The engine: gravity placement, transition discipline,
// content generation, and the pluggable formatter/generator/resolver
// capabilities.
//
// [scene] - The host abstraction the engine renders through, with an
// in-memory implementation for tests and headless runs and a terminal
// implementation for the demo TUI.
//
// [sched] - Read/write phase scheduler keeping measurement and mutation
// from interleaving under rapid pointer movement.
//
// [anim] - Cooperative clock-stepped tween engine.
//
// [io] - Scenario JSON import/export for reproducible placement cases.
//
// [render] - Headless scenario runner plus the SVG snapshot sink.
//
// [errors] - Structured error codes and input validation shared across
// the engine and CLI.
//
// [cache] - Content memoization with scoped and in-memory backends.
//
// [observability] - Pluggable instrumentation hooks for placement,
// transitions, and content generation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...       # All tests
//	go test ./pkg/tooltip/  # Specific package
//	go test -run Example    # Examples only
//
// [tooltip]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/tooltip
// [scene]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/scene
// [sched]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/sched
// [anim]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/anim
// [geom]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/geom
// [io]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/io
// [render]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/render
// [errors]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/errors
// [cache]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/cache
// [observability]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/hoverlay/hoverlay/pkg/buildinfo
package pkg
