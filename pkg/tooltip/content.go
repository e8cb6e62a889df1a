package tooltip

import (
	"bytes"
	"fmt"
	"html"

	"github.com/lucasb-eyer/go-colorful"
)

// ContentGenerator is a pure mapping from the bound datum to renderable
// markup. The built-in generator is one implementation; callers may
// substitute any function with this shape. An empty result means the
// caller manages the overlay's content out of band, so the engine leaves
// the existing content untouched.
type ContentGenerator func(d *Datum) string

// highlightBlend is the white-to-row-color blend fraction used for the
// border of highlighted rows.
const highlightBlend = 0.6

// contentConfig carries everything the built-in generator consults.
// It is assembled per render from the owning tooltip's current settings.
type contentConfig struct {
	headerEnabled bool
	negateTrend   bool
	header        HeaderFormatter
	footer        FooterFormatter
	key           KeyFormatter
	value         ValueFormatter
	ref           RefFormatter
	alert         AlertFunc
}

// renderHTML is the built-in content generator. It produces a table
// fragment: an optional header row, one body row per surviving series
// entry (color swatch, key, value, trend cell, optional alert marker),
// and an optional footer block.
//
// A nil datum produces an empty string. A series that loses every entry
// to filtering produces a single space, which renders an effectively
// empty but present overlay and so stays distinguishable from "hidden".
func renderHTML(d *Datum, cfg contentConfig) string {
	if d == nil {
		return ""
	}

	rows := filterSeries(d.Series)
	if len(rows) == 0 {
		return " "
	}

	var buf bytes.Buffer
	buf.WriteString("<table>\n")

	if cfg.headerEnabled && d.Header != nil {
		if formatted := cfg.header(d.Header); formatted != "" {
			fmt.Fprintf(&buf, "  <thead><tr><td colspan=\"4\"><strong class=\"header-value\">%s</strong></td></tr></thead>\n",
				html.EscapeString(formatted))
		}
	}

	buf.WriteString("  <tbody>\n")
	for _, e := range rows {
		renderRow(&buf, e, cfg)
	}
	buf.WriteString("  </tbody>\n</table>\n")

	if d.Footer != nil {
		if formatted := cfg.footer(d.Footer); formatted != "" {
			fmt.Fprintf(&buf, "<div class=\"footer\">%s</div>\n", html.EscapeString(formatted))
		}
	}

	return buf.String()
}

func renderRow(buf *bytes.Buffer, e SeriesEntry, cfg contentConfig) {
	rowClass := ""
	switch {
	case e.Highlight && e.Total:
		rowClass = ` class="highlight total"`
	case e.Highlight:
		rowClass = ` class="highlight"`
	case e.Total:
		rowClass = ` class="total"`
	}

	rowStyle := ""
	if e.Highlight && e.Color != "" {
		rowStyle = fmt.Sprintf(` style="border-color: %s;"`, html.EscapeString(highlightBorder(e.Color)))
	}

	fmt.Fprintf(buf, "    <tr%s%s>\n", rowClass, rowStyle)

	fmt.Fprintf(buf, "      <td class=\"legend-color-guide\"><div style=\"background-color: %s;\"></div></td>\n",
		html.EscapeString(e.Color))
	fmt.Fprintf(buf, "      <td class=\"key\">%s</td>\n", html.EscapeString(cfg.key(e.Key)))

	valueText := ""
	value := 0.0
	if e.Value != nil {
		value = *e.Value
		valueText = cfg.value(value)
	}
	fmt.Fprintf(buf, "      <td class=\"value\">%s</td>\n", html.EscapeString(valueText))

	if e.RefValue != nil {
		trend := trendClass(value, *e.RefValue, cfg.negateTrend)
		cell := "ref"
		if trend != "" {
			cell = "ref " + trend
		}
		fmt.Fprintf(buf, "      <td class=\"%s\">%s</td>\n", cell,
			html.EscapeString(cfg.ref(value, *e.RefValue)))
	}

	if cfg.alert != nil && cfg.alert(e.Data) {
		buf.WriteString("      <td class=\"alert\">!</td>\n")
	}

	buf.WriteString("    </tr>\n")
}

// trendClass classes the trend cell. The usual reading is "higher value
// than reference is positive"; negate inverts that comparison. Equal
// values carry no trend class.
func trendClass(value, ref float64, negate bool) string {
	diff := value - ref
	if negate {
		diff = -diff
	}
	switch {
	case diff > 0:
		return "positive"
	case diff < 0:
		return "negative"
	default:
		return ""
	}
}

// highlightBorder computes the border color for a highlighted row by
// blending white toward the row's own color at a fixed fraction. Colors
// the parser cannot understand (keyword specs) fall back to the row
// color itself.
func highlightBorder(color string) string {
	base, err := colorful.Hex(color)
	if err != nil {
		return color
	}
	white, _ := colorful.Hex("#ffffff")
	return white.BlendRgb(base, highlightBlend).Hex()
}
