// Package core holds the shared value types of the jigsaw: screen cells and
// rectangles, colors, pointer gestures and the game clock. It has no
// terminal dependency so the game logic stays testable.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether the two rectangles share a cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether (x, y) is one of the rectangle's cells.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inside reports whether (x, y) lies strictly within the outline drawn on
// the border cells: left < x < right and top < y < bottom, where right and
// bottom are the last border column and row.
func (r Rect) Inside(x, y int) bool {
	return x > r.X && x < r.Right()-1 && y > r.Y && y < r.Bottom()-1
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
