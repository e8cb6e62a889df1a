package tooltip

import "testing"

func TestSeriesEntryDisplayable(t *testing.T) {
	tests := []struct {
		name  string
		entry SeriesEntry
		want  bool
	}{
		{name: "value only", entry: SeriesEntry{Key: "a", Value: Float(1)}, want: true},
		{name: "ref only", entry: SeriesEntry{Key: "a", RefValue: Float(2)}, want: true},
		{name: "both", entry: SeriesEntry{Key: "a", Value: Float(1), RefValue: Float(2)}, want: true},
		{name: "neither", entry: SeriesEntry{Key: "a", Color: "#ff0000", Highlight: true}, want: false},
		{name: "zero value still displayable", entry: SeriesEntry{Key: "a", Value: Float(0)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.displayable(); got != tt.want {
				t.Errorf("displayable() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestFilterSeries(t *testing.T) {
	series := []SeriesEntry{
		{Key: "keep-1", Value: Float(1)},
		{Key: "drop", Color: "#00ff00"},
		{Key: "keep-2", RefValue: Float(3)},
	}

	got := filterSeries(series)
	if len(got) != 2 {
		t.Fatalf("filterSeries() kept %d entries, want 2", len(got))
	}
	if got[0].Key != "keep-1" || got[1].Key != "keep-2" {
		t.Errorf("filterSeries() order = [%s %s], want [keep-1 keep-2]", got[0].Key, got[1].Key)
	}
}

func TestDatumRenderable(t *testing.T) {
	tests := []struct {
		name  string
		datum *Datum
		want  bool
	}{
		{name: "nil datum", datum: nil, want: false},
		{name: "empty series", datum: &Datum{Header: "h"}, want: false},
		{
			name:  "non-empty series",
			datum: &Datum{Series: []SeriesEntry{{Key: "a", Value: Float(1)}}},
			want:  true,
		},
		{
			// Renderability is checked pre-filter; an all-filtered series
			// still renders (as a blank overlay).
			name:  "series with only hidden entries",
			datum: &Datum{Series: []SeriesEntry{{Key: "a"}}},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.datum.renderable(); got != tt.want {
				t.Errorf("renderable() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNormalizeSeries(t *testing.T) {
	entry := SeriesEntry{Key: "solo", Value: Float(7)}
	got := NormalizeSeries(entry)
	if len(got) != 1 || got[0].Key != "solo" {
		t.Errorf("NormalizeSeries() = %+v, want one-element series", got)
	}
}
