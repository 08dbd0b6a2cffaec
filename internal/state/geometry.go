package state

import "math"

// Rect is an axis-aligned box with non-negative size.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCorners builds the box spanned by two opposite corners, in any order.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Oval is an ellipse described by its centre and per-axis radii.
type Oval struct {
	Center Point
	RX, RY float64
}

// OvalFromCorners fits an ellipse into the box spanned by a and b.
func OvalFromCorners(a, b Point) Oval {
	r := RectFromCorners(a, b)
	return Oval{Center: r.Center(), RX: r.W / 2, RY: r.H / 2}
}
