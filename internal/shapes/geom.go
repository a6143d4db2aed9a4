// Package shapes provides the geometry primitives used by the rasterizer and
// the segment intersection tests that decide whether an outline crosses a
// cell. It has no external dependencies and allocates nothing per test.
package shapes

import "math"

// Point is a position in logical canvas units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rotate returns p rotated by angle radians around axis.
func (p Point) Rotate(axis Point, angle float64) Point {
	s, c := math.Sincos(angle)
	tx := p.X - axis.X
	ty := p.Y - axis.Y

	return Point{
		X: tx*c - ty*s + axis.X,
		Y: tx*s + ty*c + axis.Y,
	}
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Line is a segment between two points. The deltas and lengths are computed
// once so a line can be tested against many rectangles cheaply.
type Line struct {
	start         Point
	end           Point
	dx            float64
	dy            float64
	length        float64
	lengthSquared float64
}

// NewLine creates a segment from start to end.
func NewLine(start, end Point) Line {
	dx := end.X - start.X
	dy := end.Y - start.Y
	lengthSquared := dx*dx + dy*dy

	return Line{
		start:         start,
		end:           end,
		dx:            dx,
		dy:            dy,
		length:        math.Sqrt(lengthSquared),
		lengthSquared: lengthSquared,
	}
}

// Start returns the first endpoint.
func (l Line) Start() Point { return l.start }

// End returns the second endpoint.
func (l Line) End() Point { return l.end }

// Delta returns end - start.
func (l Line) Delta() (dx, dy float64) { return l.dx, l.dy }

// Length returns the segment length.
func (l Line) Length() float64 { return l.length }

// LengthSquared returns the squared segment length.
func (l Line) LengthSquared() float64 { return l.lengthSquared }

// Degenerate reports whether both endpoints coincide.
func (l Line) Degenerate() bool { return l.lengthSquared == 0 }

// Rotate returns a new line with both endpoints rotated around axis.
func (l Line) Rotate(axis Point, angle float64) Line {
	return NewLine(l.start.Rotate(axis, angle), l.end.Rotate(axis, angle))
}

// Circle is stored by center and squared radius.
type Circle struct {
	center   Point
	rSquared float64
}

// NewCircle creates a circle of radius r around center.
func NewCircle(center Point, r float64) Circle {
	return Circle{center: center, rSquared: r * r}
}

// Center returns the circle center.
func (c Circle) Center() Point { return c.center }

// RadiusSquared returns r².
func (c Circle) RadiusSquared() float64 { return c.rSquared }

// Ellipse is an ellipse with semi-axes a (along its own x) and b (along its
// own y), rotated by keel radians around its center.
type Ellipse struct {
	center   Point
	maxAxis  float64
	aSquared float64
	bSquared float64
	keel     float64
}

// NewEllipse creates an ellipse centered at center.
func NewEllipse(center Point, a, b, keel float64) Ellipse {
	return Ellipse{
		center:   center,
		maxAxis:  math.Max(math.Abs(a), math.Abs(b)),
		aSquared: a * a,
		bSquared: b * b,
		keel:     keel,
	}
}

// Center returns the ellipse center.
func (e Ellipse) Center() Point { return e.center }

// Keel returns the rotation of the ellipse axes in radians.
func (e Ellipse) Keel() float64 { return e.keel }

// MaxAxis returns the larger semi-axis.
func (e Ellipse) MaxAxis() float64 { return e.maxAxis }

// Degenerate reports whether either semi-axis is zero.
func (e Ellipse) Degenerate() bool { return e.aSquared == 0 || e.bSquared == 0 }
