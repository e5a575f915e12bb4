// Package world provides the geometry of the world map and kingdom levels.
package world

// Rect is a rectangle of screen cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the rectangle
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Region is a rectangle expressed as fractions of the screen, so layouts
// follow terminal resizes.
type Region struct {
	X, Y, W, H float64
}

// Scale converts the region to cells on a width×height screen.
func (r Region) Scale(width, height int) Rect {
	return Rect{
		X:      int(r.X * float64(width)),
		Y:      int(r.Y * float64(height)),
		Width:  int(r.W * float64(width)),
		Height: int(r.H * float64(height)),
	}
}

// Point is a position expressed as fractions of the screen.
type Point struct {
	X, Y float64
}

// Scale converts the point to cell coordinates on a width×height screen.
func (p Point) Scale(width, height int) (float64, float64) {
	return p.X * float64(width), p.Y * float64(height)
}
