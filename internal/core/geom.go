// Package core provides the screen buffer, geometry and input types shared by games and the platform.
// It has no external dependencies, so game logic built on it stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the box.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in world units.
// Simulations that move by fractional steps collide in RectF and only
// convert to Rect when drawing.
type RectF struct {
	X, Y float64
	W, H float64
}

func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

func (r RectF) Right() float64 {
	return r.X + r.W
}

func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports strict overlap; touching edges do not collide.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(val, hi))
}
