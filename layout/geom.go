package layout

// Point is a position in layout space.
type Point struct {
	X, Y float64
}

// Size is the drawing area available to a layout.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in layout space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p falls inside the rectangle. The left and top
// edges are inclusive, the right and bottom edges exclusive, so adjacent
// keys never both claim a boundary point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
