package scene

import (
	"fmt"
	"strconv"

	"github.com/hoverlay/hoverlay/pkg/geom"
)

// Measurer computes the rendered size of content for nodes that have no
// explicitly installed size. The default measurer returns the zero size,
// which matches an empty element.
type Measurer func(kind, markup string) geom.Size

// Memory is an in-memory Scene implementation.
//
// It records every attribute, style, and content write so tests and
// snapshot renderers can inspect the document state after a render cycle.
// Node sizes are either installed explicitly with [Memory.SetMeasured] or
// derived from content via a configurable [Measurer].
//
// Memory is not goroutine-safe; the engine is single-threaded by design
// and drives the scene from one logical thread of control.
type Memory struct {
	root    *MemNode
	nodes   map[string]*MemNode
	measure Measurer
	nextID  int
}

// MemNode is the node type handed out by [Memory].
type MemNode struct {
	id       string
	kind     string
	parent   *MemNode
	children []*MemNode

	attrs    map[string]string
	styles   map[string]string
	content  string
	measured *geom.Size
}

// ID returns the scene-unique node identifier.
func (n *MemNode) ID() string { return n.id }

// Kind returns the element kind the node was created with.
func (n *MemNode) Kind() string { return n.kind }

// NewMemory creates an in-memory scene whose root viewport has the given
// size. The root acts as the default container for nodes created with a
// nil parent.
func NewMemory(viewport geom.Size) *Memory {
	m := &Memory{
		nodes: make(map[string]*MemNode),
	}
	m.root = &MemNode{
		id:       "root",
		kind:     "root",
		attrs:    make(map[string]string),
		styles:   make(map[string]string),
		measured: &viewport,
	}
	m.nodes[m.root.id] = m.root
	return m
}

// WithMeasurer installs a content measurer and returns the scene for
// chaining at construction time.
func (m *Memory) WithMeasurer(f Measurer) *Memory {
	m.measure = f
	return m
}

// Root returns the scene root node.
func (m *Memory) Root() Node { return m.root }

// CreateNode creates a node of the given kind under parent (or the root
// when parent is nil).
func (m *Memory) CreateNode(kind string, parent Node) Node {
	p := m.root
	if parent != nil {
		p = m.lookup(parent)
	}
	m.nextID++
	n := &MemNode{
		id:     fmt.Sprintf("%s-%d", kind, m.nextID),
		kind:   kind,
		parent: p,
		attrs:  make(map[string]string),
		styles: make(map[string]string),
	}
	p.children = append(p.children, n)
	m.nodes[n.id] = n
	return n
}

// SetAttr records an attribute write.
func (m *Memory) SetAttr(n Node, key, value string) {
	m.lookup(n).attrs[key] = value
}

// SetStyle records a style write.
func (m *Memory) SetStyle(n Node, key, value string) {
	m.lookup(n).styles[key] = value
}

// SetContent replaces the node's content.
func (m *Memory) SetContent(n Node, markup string) {
	m.lookup(n).content = markup
}

// SetMeasured installs a fixed rendered size for the node, overriding
// content-based measurement. Tests use this to control overlay geometry.
func (m *Memory) SetMeasured(n Node, size geom.Size) {
	mn := m.lookup(n)
	mn.measured = &size
}

// Measure returns the node's rendered size: the installed size if one was
// set, otherwise the measurer applied to the node's content.
func (m *Memory) Measure(n Node) geom.Size {
	mn := m.lookup(n)
	if mn.measured != nil {
		return *mn.measured
	}
	if m.measure != nil {
		return m.measure(mn.kind, mn.content)
	}
	return geom.Size{}
}

// Container returns the size of the node's parent viewport. A node with
// no parent reports the root viewport.
func (m *Memory) Container(n Node) geom.Size {
	mn := m.lookup(n)
	if mn.parent != nil {
		return m.Measure(mn.parent)
	}
	return m.Measure(m.root)
}

// Opacity returns the node's opacity style, defaulting to 1 when unset
// or unparsable.
func (m *Memory) Opacity(n Node) float64 {
	v, ok := m.lookup(n).styles["opacity"]
	if !ok {
		return 1
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 1
	}
	return f
}

// Attr returns a previously written attribute value.
func (m *Memory) Attr(n Node, key string) string { return m.lookup(n).attrs[key] }

// Style returns a previously written style value.
func (m *Memory) Style(n Node, key string) string { return m.lookup(n).styles[key] }

// Content returns the node's current content.
func (m *Memory) Content(n Node) string { return m.lookup(n).content }

// Position returns the node's placed position, parsed from its transform
// style. It returns false if the node has not been placed yet.
func (m *Memory) Position(n Node) (geom.Point, bool) {
	return ParseTranslate(m.lookup(n).styles["transform"])
}

func (m *Memory) lookup(n Node) *MemNode {
	if mn, ok := n.(*MemNode); ok && m.nodes[mn.id] == mn {
		return mn
	}
	panic("scene: node does not belong to this memory scene")
}

// Ensure Memory implements Scene.
var _ Scene = (*Memory)(nil)
