// Package geom provides the plain value types shared by the placement
// engine: points, sizes, and rectangles in the host scene's coordinate
// space. All coordinates are in user units (typically pixels, or cells
// for terminal scenes), with the origin at the top-left and the vertical
// axis growing downward.
package geom

// Point is a position in scene coordinates.
type Point struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// Add returns the point translated by the given offset.
func (p Point) Add(off Point) Point {
	return Point{Left: p.Left + off.Left, Top: p.Top + off.Top}
}

// Lerp returns the point linearly interpolated toward to at fraction t,
// where t=0 yields p and t=1 yields to. t is not clamped.
func (p Point) Lerp(to Point, t float64) Point {
	return Point{
		Left: p.Left + (to.Left-p.Left)*t,
		Top:  p.Top + (to.Top-p.Top)*t,
	}
}

// Size is a width/height pair.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Empty returns true if either dimension is zero or negative.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Rect is an axis-aligned rectangle identified by its top-left corner
// and its size.
type Rect struct {
	Min  Point `json:"min"`
	Size Size  `json:"size"`
}

// Right returns the horizontal coordinate of the right edge.
func (r Rect) Right() float64 { return r.Min.Left + r.Size.W }

// Bottom returns the vertical coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Min.Top + r.Size.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{Left: r.Min.Left + r.Size.W/2, Top: r.Min.Top + r.Size.H/2}
}

// Contains reports whether p lies inside the rectangle, treating the
// right and bottom edges as exclusive.
func (r Rect) Contains(p Point) bool {
	return p.Left >= r.Min.Left && p.Left < r.Right() &&
		p.Top >= r.Min.Top && p.Top < r.Bottom()
}
