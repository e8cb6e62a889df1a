package render

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hoverlay/hoverlay/pkg/geom"
	"github.com/hoverlay/hoverlay/pkg/scene"
)

// Nominal cell geometry for estimated measurement.
const (
	estCharWidth  = 7.5
	estRowHeight  = 21.0
	estPadding    = 16.0
	estEmptyWidth = 8.0
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes markup tags, leaving a space in their place so
// adjacent cells do not run together.
func StripTags(markup string) string {
	return tagPattern.ReplaceAllString(markup, " ")
}

// EstimateMeasurer returns a Measurer that derives an overlay size from
// markup: tags are stripped, remaining text is split into lines at row
// boundaries, and the widest line in display cells sets the width.
func EstimateMeasurer() scene.Measurer {
	return func(kind, markup string) geom.Size {
		return EstimateSize(markup)
	}
}

// EstimateSize estimates the rendered size of markup per the package
// measurement rules.
func EstimateSize(markup string) geom.Size {
	if strings.TrimSpace(markup) == "" {
		return geom.Size{W: estEmptyWidth, H: estRowHeight}
	}

	// Row-ish closing tags become line breaks, then all tags go.
	text := strings.NewReplacer("</tr>", "\n", "</thead>", "\n", "</div>", "\n").Replace(markup)
	text = StripTags(text)

	widest, rows := 0, 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		rows++
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	if rows == 0 {
		return geom.Size{W: estEmptyWidth, H: estRowHeight}
	}

	return geom.Size{
		W: float64(widest)*estCharWidth + estPadding,
		H: float64(rows)*estRowHeight + estPadding,
	}
}

// fixedMeasurer always reports the given size.
func fixedMeasurer(size geom.Size) scene.Measurer {
	return func(kind, markup string) geom.Size { return size }
}
