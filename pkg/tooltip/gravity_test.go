package tooltip

import (
	"testing"

	"github.com/hoverlay/hoverlay/pkg/errors"
	"github.com/hoverlay/hoverlay/pkg/geom"
)

func TestParseGravity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Gravity
		wantErr bool
	}{
		{name: "short north", input: "n", want: GravityNorth},
		{name: "full north", input: "north", want: GravityNorth},
		{name: "short south", input: "s", want: GravitySouth},
		{name: "short east", input: "e", want: GravityEast},
		{name: "short west", input: "w", want: GravityWest},
		{name: "center", input: "center", want: GravityCenter},
		{name: "mixed case", input: "North", want: GravityNorth},
		{name: "surrounding space", input: "  e  ", want: GravityEast},
		{name: "unknown", input: "diagonal", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGravity(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGravity(%q) expected error, got %q", tt.input, got)
				}
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidGravity {
					t.Errorf("error code = %q, want %q", code, errors.ErrCodeInvalidGravity)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGravity(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseGravity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeOffset(t *testing.T) {
	overlay := geom.Size{W: 100, H: 40}
	container := geom.Size{W: 500, H: 300}
	const distance = 25.0

	tests := []struct {
		name   string
		anchor geom.Point
		g      Gravity
		want   geom.Point
	}{
		{
			name:   "west centered fit",
			anchor: geom.Point{Left: 200, Top: 150},
			g:      GravityWest,
			want:   geom.Point{Left: 25, Top: -20},
		},
		{
			name:   "west flips to east side on right overflow",
			anchor: geom.Point{Left: 450, Top: 150},
			g:      GravityWest,
			want:   geom.Point{Left: -125, Top: -20},
		},
		{
			name:   "west clamps against top edge",
			anchor: geom.Point{Left: 200, Top: 10},
			g:      GravityWest,
			want:   geom.Point{Left: 25, Top: -10},
		},
		{
			name:   "west clamps against bottom edge",
			anchor: geom.Point{Left: 200, Top: 290},
			g:      GravityWest,
			want:   geom.Point{Left: 25, Top: -30},
		},
		{
			name:   "east centered fit",
			anchor: geom.Point{Left: 300, Top: 150},
			g:      GravityEast,
			want:   geom.Point{Left: -125, Top: -20},
		},
		{
			name:   "east flips to west side on left overflow",
			anchor: geom.Point{Left: 50, Top: 150},
			g:      GravityEast,
			want:   geom.Point{Left: 25, Top: -20},
		},
		{
			name:   "north below anchor with glyph pad",
			anchor: geom.Point{Left: 250, Top: 100},
			g:      GravityNorth,
			want:   geom.Point{Left: -55, Top: 25},
		},
		{
			name:   "north flips above anchor on bottom overflow",
			anchor: geom.Point{Left: 250, Top: 280},
			g:      GravityNorth,
			want:   geom.Point{Left: -55, Top: -65},
		},
		{
			name:   "north clamps against left edge",
			anchor: geom.Point{Left: 40, Top: 10},
			g:      GravityNorth,
			want:   geom.Point{Left: -40, Top: 25},
		},
		{
			name:   "south above anchor",
			anchor: geom.Point{Left: 250, Top: 200},
			g:      GravitySouth,
			want:   geom.Point{Left: -50, Top: -65},
		},
		{
			name:   "south flips below anchor on top overflow",
			anchor: geom.Point{Left: 250, Top: 30},
			g:      GravitySouth,
			want:   geom.Point{Left: -50, Top: 25},
		},
		{
			name:   "center has no flip or clamp",
			anchor: geom.Point{Left: 480, Top: 150},
			g:      GravityCenter,
			want:   geom.Point{Left: -50, Top: -20},
		},
		{
			name:   "unknown gravity yields zero offset",
			anchor: geom.Point{Left: 200, Top: 150},
			g:      Gravity("diagonal"),
			want:   geom.Point{},
		},
		{
			name:   "alias spelling normalizes in the render path",
			anchor: geom.Point{Left: 200, Top: 150},
			g:      Gravity("W"),
			want:   geom.Point{Left: 25, Top: -20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOffset(overlay, container, tt.anchor, tt.g, distance)
			if got != tt.want {
				t.Errorf("ComputeOffset() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeOffsetClampUpperBoundWins(t *testing.T) {
	// Overlay taller than the container: the floor and ceiling conflict
	// and the ceiling must win.
	overlay := geom.Size{W: 100, H: 40}
	container := geom.Size{W: 500, H: 30}

	got := ComputeOffset(overlay, container, geom.Point{Left: 200, Top: 10}, GravityWest, 25)
	want := geom.Point{Left: 25, Top: -20}
	if got != want {
		t.Errorf("ComputeOffset() = %+v, want %+v", got, want)
	}
}

func TestFinalPosition(t *testing.T) {
	tests := []struct {
		name   string
		anchor geom.Point
		offset geom.Point
		want   geom.Point
	}{
		{
			name:   "simple addition",
			anchor: geom.Point{Left: 200, Top: 150},
			offset: geom.Point{Left: 25, Top: -20},
			want:   geom.Point{Left: 225, Top: 130},
		},
		{
			name:   "left edge floored at zero",
			anchor: geom.Point{Left: 10, Top: 50},
			offset: geom.Point{Left: -30, Top: -80},
			want:   geom.Point{Left: 0, Top: -30},
		},
		{
			name:   "top carries no floor",
			anchor: geom.Point{Left: 100, Top: 5},
			offset: geom.Point{Left: 0, Top: -40},
			want:   geom.Point{Left: 100, Top: -35},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPosition(tt.anchor, tt.offset)
			if got != tt.want {
				t.Errorf("FinalPosition(%+v, %+v) = %+v, want %+v", tt.anchor, tt.offset, got, tt.want)
			}
		})
	}
}

// TestNorthEdgePlacement pins the full pipeline for a pointer near the
// top-left corner: the horizontal clamp pulls the overlay flush with the
// left edge while the vertical drop stays below the pointer.
func TestNorthEdgePlacement(t *testing.T) {
	overlay := geom.Size{W: 100, H: 40}
	container := geom.Size{W: 500, H: 300}
	anchor := geom.Point{Left: 40, Top: 10}

	off := ComputeOffset(overlay, container, anchor, GravityNorth, 25)
	got := FinalPosition(anchor, off)
	want := geom.Point{Left: 0, Top: 35}
	if got != want {
		t.Errorf("placed at %+v, want %+v", got, want)
	}
}
