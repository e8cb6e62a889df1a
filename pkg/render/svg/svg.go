// Package svg renders scenario results as standalone SVG snapshots.
//
// A snapshot shows the container frame, the anchor point, and the
// settled overlay with its generated rows. It exists for eyeballing
// placement behavior and for golden-file style comparisons; it is not a
// faithful reproduction of host styling.
package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hoverlay/hoverlay/pkg/render"
)

const snapshotCSS = `
    .frame { fill: #fdfdfd; stroke: #999; }
    .anchor { fill: #d62728; }
    .overlay { fill: #fff; stroke: #333; rx: 3; }
    .overlay-text { font: 12px sans-serif; fill: #111; }`

type Option func(*renderer)

type renderer struct {
	showAnchor bool
	scale      float64
}

// WithAnchorMarker toggles the anchor crosshair. On by default.
func WithAnchorMarker(show bool) Option { return func(r *renderer) { r.showAnchor = show } }

// WithScale multiplies the output width and height attributes while
// keeping the viewBox in scenario coordinates.
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// Render draws the settled scenario state as a standalone SVG document.
func Render(res *render.Result, opts ...Option) []byte {
	r := renderer{showAnchor: true, scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	s := res.Scenario
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Container.W, s.Container.H, s.Container.W*r.scale, s.Container.H*r.scale)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", snapshotCSS)

	fmt.Fprintf(&buf, `  <rect class="frame" x="0" y="0" width="%.1f" height="%.1f"/>`+"\n",
		s.Container.W, s.Container.H)

	renderOverlay(&buf, res)

	if r.showAnchor {
		fmt.Fprintf(&buf, `  <circle class="anchor" cx="%.1f" cy="%.1f" r="3"/>`+"\n",
			s.Anchor.Left, s.Anchor.Top)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderOverlay(buf *bytes.Buffer, res *render.Result) {
	fmt.Fprintf(buf, `  <rect class="overlay" x="%.1f" y="%.1f" width="%.1f" height="%.1f" opacity="%.2f"/>`+"\n",
		res.Position.Left, res.Position.Top, res.Size.W, res.Size.H, res.Opacity)

	for i, line := range contentLines(res.Content) {
		fmt.Fprintf(buf, `  <text class="overlay-text" x="%.1f" y="%.1f" opacity="%.2f">%s</text>`+"\n",
			res.Position.Left+8,
			res.Position.Top+16+float64(i)*16,
			res.Opacity,
			escape(line))
	}
}

// contentLines flattens the generated markup into plain text rows for
// the snapshot, reusing the runner's tag stripping.
func contentLines(markup string) []string {
	text := strings.NewReplacer("</tr>", "\n", "</thead>", "\n", "</div>", "\n").Replace(markup)
	text = render.StripTags(text)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
