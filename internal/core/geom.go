// Package core provides the pixel-space types shared by the simulation and its
// frontends: rectangles, collision masks, input events, and the declarative draw
// and sound requests a frame produces. It has no external dependencies so that
// game logic stays pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen pixels.
// Y grows downwards.
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

// CenterX returns the horizontal center, rounded towards the left edge.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center, rounded towards the top edge.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// SetCenterX moves the rectangle so that CenterX() == cx.
func (r *Rect) SetCenterX(cx int) {
	r.X = cx - r.W/2
}

// SetCenterY moves the rectangle so that CenterY() == cy.
func (r *Rect) SetCenterY(cy int) {
	r.Y = cy - r.H/2
}

// SetBottom moves the rectangle so that Bottom() == bottom.
func (r *Rect) SetBottom(bottom int) {
	r.Y = bottom - r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
