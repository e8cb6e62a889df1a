// Package scene abstracts the host document the overlay engine reads and
// mutates. The engine never touches a real render tree directly; it goes
// through the [Scene] interface, which keeps the placement logic portable
// across backends:
//   - memory: In-memory scene for tests, snapshots, and the HTTP playground
//   - term: Terminal-cell scene for the interactive demo (subpackage)
//
// # Architecture
//
// A Scene hands out opaque [Node] handles. Nodes form a tree: every node
// created with a nil parent attaches under the scene root, which doubles
// as the default container for viewport measurement.
//
// The interface splits cleanly into read operations (Measure, Container,
// Opacity) and write operations (SetAttr, SetStyle, SetContent). The
// placement controller relies on that split: all reads for a render cycle
// are issued before any write, so a backend batching through a frame
// scheduler never observes a half-mutated document.
//
// # Usage
//
//	sc := scene.NewMemory(geom.Size{W: 800, H: 600})
//	node := sc.CreateNode("div", nil)
//	sc.SetContent(node, "<b>hello</b>")
//	size := sc.Measure(node)
package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hoverlay/hoverlay/pkg/geom"
)

// Node is an opaque handle to an element owned by a Scene.
// Handles are stable for the lifetime of the element and are only
// meaningful to the scene that created them.
type Node interface {
	// ID returns the scene-unique identifier of the node.
	ID() string
}

// Scene is the abstract host document.
//
// Measure, Container, and Opacity are read operations; SetAttr, SetStyle,
// and SetContent are write operations. Callers that batch through a frame
// scheduler must keep the two phases separate within a cycle.
type Scene interface {
	// CreateNode creates a new element of the given kind under parent.
	// A nil parent attaches the element under the scene root.
	CreateNode(kind string, parent Node) Node

	// SetAttr sets an attribute (id, class, ...) on the node.
	SetAttr(n Node, key, value string)

	// SetStyle sets a single style property on the node.
	SetStyle(n Node, key, value string)

	// SetContent replaces the rendered content of the node.
	SetContent(n Node, markup string)

	// Measure returns the current rendered size of the node.
	Measure(n Node) geom.Size

	// Container returns the size of the node's containing viewport
	// (its parent's visible bounds, not any scrollable extent).
	Container(n Node) geom.Size

	// Opacity returns the node's current effective opacity in [0, 1].
	Opacity(n Node) float64
}

// Translate formats a 2D translation as a transform style value.
// The inverse is [ParseTranslate].
func Translate(p geom.Point) string {
	return fmt.Sprintf("translate(%.1fpx,%.1fpx)", p.Left, p.Top)
}

// ParseTranslate parses a transform style value produced by [Translate].
// It returns false if the value is not a 2D translation.
func ParseTranslate(s string) (geom.Point, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return geom.Point{}, false
	}
	inner := s[len("translate(") : len(s)-1]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return geom.Point{}, false
	}
	left, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[0]), "px"), 64)
	if err != nil {
		return geom.Point{}, false
	}
	top, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[1]), "px"), 64)
	if err != nil {
		return geom.Point{}, false
	}
	return geom.Point{Left: left, Top: top}, true
}
