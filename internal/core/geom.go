// Package core holds the value types shared by the simulation and both
// frontends: field geometry, colors, the cell screen, input frames and the
// random source. It imports nothing outside the standard library.
package core

import "math"

// Point is a position in field units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in field units. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect returns the rectangle at (x, y) of size w×h.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Around returns the rectangle centered on (cx, cy) extending halfW and halfH
// to each side.
func Around(cx, cy, halfW, halfH float64) Rect {
	return Rect{X: cx - halfW, Y: cy - halfH, W: 2 * halfW, H: 2 * halfH}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether r and o share interior area. Touching edges do
// not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether (x, y) lies in r, right and bottom edges excluded.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Tile returns the size of one cell when r is split into rows×cols, floored
// to whole units.
func (r Rect) Tile(rows, cols int) (w, h float64) {
	if rows <= 0 || cols <= 0 {
		return 0, 0
	}
	return math.Floor(r.W / float64(cols)), math.Floor(r.H / float64(rows))
}
