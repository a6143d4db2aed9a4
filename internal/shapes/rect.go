package shapes

import "math"

// Rect is an axis-aligned rectangle with its four boundary edges built once.
// Overlap tests reduce to "does the shape cross one of the edges", so only
// outlines are detected: a circle wholly inside a rectangle does not overlap.
type Rect struct {
	topLeft     Point
	bottomRight Point

	top    Line
	right  Line
	bottom Line
	left   Line
}

// NewRect creates a rectangle from two opposite corners. The corners are
// normalized so that topLeft is component-wise the smaller one.
func NewRect(topLeft, bottomRight Point) Rect {
	tl := Point{X: math.Min(topLeft.X, bottomRight.X), Y: math.Min(topLeft.Y, bottomRight.Y)}
	br := Point{X: math.Max(topLeft.X, bottomRight.X), Y: math.Max(topLeft.Y, bottomRight.Y)}
	tr := Point{X: br.X, Y: tl.Y}
	bl := Point{X: tl.X, Y: br.Y}

	return Rect{
		topLeft:     tl,
		bottomRight: br,
		top:         NewLine(tl, tr),
		right:       NewLine(tr, br),
		bottom:      NewLine(bl, br),
		left:        NewLine(tl, bl),
	}
}

// TopLeft returns the minimum corner.
func (r Rect) TopLeft() Point { return r.topLeft }

// BottomRight returns the maximum corner.
func (r Rect) BottomRight() Point { return r.bottomRight }

// Edges returns the boundary in top, right, bottom, left order.
func (r Rect) Edges() [4]Line {
	return [4]Line{r.top, r.right, r.bottom, r.left}
}

// Mid returns the geometric center.
func (r Rect) Mid() Point {
	return Point{
		X: (r.topLeft.X + r.bottomRight.X) / 2,
		Y: (r.topLeft.Y + r.bottomRight.Y) / 2,
	}
}

// Quadrants bisects the rectangle at its center and returns the halves in
// top-left, top-right, bottom-left, bottom-right order.
func (r Rect) Quadrants() [4]Rect {
	p1, p2 := r.topLeft, r.bottomRight
	m := r.Mid()

	return [4]Rect{
		NewRect(p1, m),
		NewRect(Point{X: m.X, Y: p1.Y}, Point{X: p2.X, Y: m.Y}),
		NewRect(Point{X: p1.X, Y: m.Y}, Point{X: m.X, Y: p2.Y}),
		NewRect(m, p2),
	}
}

// OverlapsLine reports whether the segment crosses any edge.
func (r Rect) OverlapsLine(l Line) bool {
	return r.top.IntersectsLine(l) ||
		r.right.IntersectsLine(l) ||
		r.bottom.IntersectsLine(l) ||
		r.left.IntersectsLine(l)
}

// OverlapsCircle reports whether the circle outline crosses any edge.
func (r Rect) OverlapsCircle(c Circle) bool {
	return r.top.IntersectsCircle(c) ||
		r.right.IntersectsCircle(c) ||
		r.bottom.IntersectsCircle(c) ||
		r.left.IntersectsCircle(c)
}

// OverlapsEllipse reports whether the ellipse outline crosses any edge.
func (r Rect) OverlapsEllipse(e Ellipse) bool {
	return r.top.IntersectsEllipse(e) ||
		r.right.IntersectsEllipse(e) ||
		r.bottom.IntersectsEllipse(e) ||
		r.left.IntersectsEllipse(e)
}
