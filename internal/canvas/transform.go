package canvas

import (
	"math"

	"github.com/vovakirdan/tui-asc/internal/shapes"
)

// Transform draws onto a grid through a rotation followed by a translation.
// It keeps its own state, so the grid is never left transformed: drop the
// Transform and drawing on the grid is back in plain logical coordinates.
type Transform struct {
	grid     *Grid
	angle    float64
	angleSin float64
	angleCos float64
	x        float64
	y        float64
}

var _ Drawer = (*Transform)(nil)

// Transform returns an identity transform drawing onto g.
func (g *Grid) Transform() *Transform {
	return &Transform{grid: g, angleCos: 1}
}

// WithTransform calls f with a fresh identity transform. The transform is
// only meant to live for the duration of f.
func (g *Grid) WithTransform(f func(t *Transform)) {
	f(g.Transform())
}

// Rotate adds radians to the accumulated rotation.
func (t *Transform) Rotate(radians float64) *Transform {
	t.angle += radians
	t.angleSin, t.angleCos = math.Sincos(t.angle)
	return t
}

// Translate adds (x, y) to the accumulated offset.
func (t *Transform) Translate(x, y float64) *Transform {
	t.x += x
	t.y += y
	return t
}

// Reset returns the transform to identity.
func (t *Transform) Reset() *Transform {
	t.angle = 0
	t.angleSin = 0
	t.angleCos = 1
	t.x = 0
	t.y = 0
	return t
}

// Angle returns the accumulated rotation in radians.
func (t *Transform) Angle() float64 {
	return t.angle
}

// Offset returns the accumulated translation.
func (t *Transform) Offset() (x, y float64) {
	return t.x, t.y
}

// Apply maps a local point into grid space: rotate about the local origin,
// then translate.
func (t *Transform) Apply(x, y float64) shapes.Point {
	return shapes.Point{
		X: x*t.angleCos - y*t.angleSin + t.x,
		Y: x*t.angleSin + y*t.angleCos + t.y,
	}
}

// Line draws a transformed segment.
func (t *Transform) Line(x1, y1, x2, y2 float64) {
	p1 := t.Apply(x1, y1)
	p2 := t.Apply(x2, y2)
	t.grid.Line(p1.X, p1.Y, p2.X, p2.Y)
}

// Circle draws a circle around the transformed center.
func (t *Transform) Circle(x, y, r float64) {
	p := t.Apply(x, y)
	t.grid.Circle(p.X, p.Y, r)
}

// Ellipse draws an ellipse around the transformed center, with its keel
// turned by the accumulated rotation.
func (t *Transform) Ellipse(x, y, a, b, keel float64) {
	p := t.Apply(x, y)
	t.grid.Ellipse(p.X, p.Y, a, b, t.angle+keel)
}
