// Package io provides JSON import and export for placement scenarios.
//
// # Overview
//
// A scenario is a self-contained description of one tooltip placement:
// the container geometry, the anchor point, the placement options, and
// the datum to render. The format is designed for:
//
//   - Reproducing placement cases headlessly (CLI, snapshots, tests)
//   - Integration with external tools that produce or consume scenarios
//   - Round-trip preservation: import, render, export, and re-import
//
// # JSON Format
//
// A scenario is a single JSON object:
//
//	{
//	  "name": "north near the corner",
//	  "container": {"w": 500, "h": 300},
//	  "anchor": {"left": 40, "top": 10},
//	  "overlay": {"w": 100, "h": 40},
//	  "gravity": "n",
//	  "distance": 25,
//	  "classes": ["metrics"],
//	  "datum": {
//	    "header": "March",
//	    "series": [
//	      {"key": "Requests", "value": 1234.5, "color": "#1f77b4"}
//	    ]
//	  }
//	}
//
// Required fields are container, anchor, and datum. Everything else
// falls back to the engine defaults. The optional overlay size stands in
// for content measurement when the scenario is rendered without a real
// layout host.
//
// # Import
//
// Use [ImportJSON] to read a scenario from a file path, or [ReadJSON] to
// read from any io.Reader. Both validate gravity spellings, class names,
// and color specs up front, so a bad scenario fails at load time rather
// than mid-render. Errors carry structured codes from the errors
// package.
//
// # Export
//
// Use [ExportJSON] to write a scenario to a file, or [WriteJSON] to
// write to any io.Writer. The output re-imports identically.
package io
