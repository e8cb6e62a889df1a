package tooltip

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hoverlay/hoverlay/pkg/scene"
)

// BaseClass is attached to every overlay node ahead of any caller-supplied
// classes.
const BaseClass = "hoverlay-tooltip"

// overlayCounter feeds monotonically increasing instance ids. Uniqueness
// is all that matters here; randomness buys nothing.
var overlayCounter atomic.Uint64

// overlay lazily owns the rendered node for one tooltip instance.
// The node is created on first use and lives until the instance is
// discarded; ensure is idempotent after that.
type overlay struct {
	sc      scene.Scene
	classes []string

	node scene.Node
	id   string
}

// ensure creates the overlay node under container on first call and
// returns the live node. A nil container attaches under the scene's
// default root. Subsequent calls are no-ops returning the same node.
func (o *overlay) ensure(container scene.Node) scene.Node {
	if o.node != nil {
		return o.node
	}

	n := o.sc.CreateNode("div", container)
	o.id = fmt.Sprintf("%s-%d", BaseClass, overlayCounter.Add(1))

	o.sc.SetAttr(n, "id", o.id)
	o.sc.SetAttr(n, "class", o.classAttr())
	o.sc.SetStyle(n, "opacity", "0")
	o.sc.SetStyle(n, "position", "absolute")
	o.sc.SetStyle(n, "top", "0")
	o.sc.SetStyle(n, "left", "0")

	o.node = n
	return n
}

// applyClasses rewrites the class attribute on an existing node after the
// class list changes. No-op before first ensure.
func (o *overlay) applyClasses() {
	if o.node != nil {
		o.sc.SetAttr(o.node, "class", o.classAttr())
	}
}

func (o *overlay) classAttr() string {
	return strings.Join(append([]string{BaseClass}, o.classes...), " ")
}

// Node returns the live overlay node, or nil before the first render.
func (o *overlay) Node() scene.Node { return o.node }

// ID returns the instance id, or the empty string before the first render.
func (o *overlay) ID() string { return o.id }
