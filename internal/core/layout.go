// Package core holds the terminal canvas and input vocabulary used by the
// simulator front-end. It has no Bubble Tea dependency so drawing code can
// be tested on plain buffers.
package core

// Rect is an axis-aligned area of the canvas.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by dx columns and dy rows on every side.
// The result never has negative size.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: Max(r.W-2*dx, 0),
		H: Max(r.H-2*dy, 0),
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
