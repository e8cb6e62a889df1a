package tooltip

// Datum is the value bound for one render cycle.
type Datum struct {
	// Header is the optional value shown in the header row. It is
	// formatted by the header formatter; nil means no header.
	Header any `json:"header,omitempty"`

	// Series holds the entries in display order. A datum whose series is
	// empty after normalization is not renderable.
	Series []SeriesEntry `json:"series"`

	// Footer is the optional value appended after the series rows.
	Footer any `json:"footer,omitempty"`
}

// SeriesEntry is a single row of the tooltip body.
type SeriesEntry struct {
	// Key labels the row.
	Key string `json:"key"`

	// Value is the primary numeric value. nil means absent.
	Value *float64 `json:"value,omitempty"`

	// RefValue is the reference the value is compared against for the
	// trend cell. nil means absent.
	RefValue *float64 `json:"ref_value,omitempty"`

	// Color is the swatch color spec (hex or keyword).
	Color string `json:"color,omitempty"`

	// Highlight marks the row for emphasized styling.
	Highlight bool `json:"highlight,omitempty"`

	// Total marks the row as a totals row.
	Total bool `json:"total,omitempty"`

	// Data is an opaque passthrough consulted only by caller-supplied
	// alert predicates.
	Data any `json:"data,omitempty"`
}

// displayable reports whether the entry survives filtering: entries with
// neither a value nor a reference value are excluded from rendering
// entirely, not merely hidden.
func (e SeriesEntry) displayable() bool {
	return e.Value != nil || e.RefValue != nil
}

// NormalizeSeries wraps a single entry into a one-element series.
// Callers binding one point per render use this instead of building a
// slice by hand.
func NormalizeSeries(entry SeriesEntry) []SeriesEntry {
	return []SeriesEntry{entry}
}

// filterSeries returns the entries that survive display filtering,
// preserving insertion order.
func filterSeries(series []SeriesEntry) []SeriesEntry {
	out := make([]SeriesEntry, 0, len(series))
	for _, e := range series {
		if e.displayable() {
			out = append(out, e)
		}
	}
	return out
}

// renderable reports whether the datum can produce output at all: a nil
// datum or one with an empty series (before filtering) is skipped without
// touching the overlay.
func (d *Datum) renderable() bool {
	return d != nil && len(d.Series) > 0
}

// Float returns a pointer to v, for building series entries inline.
func Float(v float64) *float64 { return &v }
