// Package core holds the frontend-agnostic building blocks: colors,
// geometry, the terminal cell buffer and input actions.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer cell rectangle used for screen layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Box is an axis-aligned bounding box in world units, stored by its edges.
// Collision math works on Box; layout works on Rect.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAround returns the square box of half-size r centered on (cx, cy).
func BoxAround(cx, cy, r float64) Box {
	return Box{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}
}

// Inset shrinks the box by p on every side.
func (b Box) Inset(p float64) Box {
	return Box{Left: b.Left + p, Top: b.Top + p, Right: b.Right - p, Bottom: b.Bottom - p}
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Intersects returns true if this box overlaps with another.
// Uses standard AABB collision detection; shared edges are not an overlap.
func (b Box) Intersects(other Box) bool {
	if b.Left >= other.Right || other.Left >= b.Right {
		return false
	}
	if b.Top >= other.Bottom || other.Top >= b.Bottom {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
