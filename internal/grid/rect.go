package grid

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Size in pixels
}

// Contains returns true if the given pixel is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects returns true if this rectangle overlaps with another rectangle.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Translate returns the rectangle moved by the given delta.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the center pixel of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
