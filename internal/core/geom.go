// Package core provides the fundamental types shared by every game engine:
// grid and continuous geometry, directions, semantic input actions and the
// cell buffer renderers draw into. It has no external dependencies so game
// rules stay pure and testable.
package core

import "math"

// GridPosition is an integer cell coordinate on a discrete board.
type GridPosition struct {
	X, Y int
}

// Pos is shorthand for constructing a GridPosition.
func Pos(x, y int) GridPosition {
	return GridPosition{X: x, Y: y}
}

// Add returns the position one step away in direction d.
func (p GridPosition) Add(d Direction) GridPosition {
	dx, dy := d.Delta()
	return GridPosition{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p lies inside a width x height board.
func (p GridPosition) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Rect represents an integer axis-aligned bounding box.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a continuous axis-aligned bounding box used by the physics games.
type RectF struct {
	X, Y float64
	W, H float64
}

// Intersects reports strict overlap between two boxes.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// PointF is a continuous 2D point.
type PointF struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p PointF) Dist(q PointF) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
