package glyphmesh

import "math"

// Point represents a 2D point or vector in outline space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Cross returns the 2D cross product (scalar).
// Positive when q lies counter-clockwise of p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Perp returns the clockwise perpendicular (y, -x). For an edge of a
// counter-clockwise outline this points out of the polygon.
func (p Point) Perp() Point {
	return Point{X: p.Y, Y: -p.X}
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return p
	}
	return Point{X: p.X / length, Y: p.Y / length}
}
