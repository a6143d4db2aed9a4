package shapes

import "math"

// IntersectsLine reports whether the two segments properly cross.
//
// Both segment parameters must lie strictly inside (0, 1): touching at an
// endpoint does not count, so two rectangle edges sharing a corner never
// register the same crossing twice. Parallel segments (det == 0) never
// intersect, including collinear overlapping ones.
func (l Line) IntersectsLine(other Line) bool {
	det := l.dx*other.dy - other.dx*l.dy
	if det == 0 {
		return false
	}

	// Solved against the far endpoint of other: gamma runs along l and
	// lambda runs backwards along other.
	rx := other.end.X - l.start.X
	ry := other.end.Y - l.start.Y
	gamma := (other.dy*rx - other.dx*ry) / det
	lambda := (l.dx*ry - l.dy*rx) / det

	return inUnit(gamma) && inUnit(lambda)
}

// IntersectsCircle reports whether the segment crosses the circle outline.
// A segment lying entirely inside the circle does not cross it.
func (l Line) IntersectsCircle(c Circle) bool {
	if l.lengthSquared == 0 {
		return false
	}

	ax := l.start.X - c.center.X
	ay := l.start.Y - c.center.Y

	a := l.lengthSquared
	b := 2 * (ax*l.dx + ay*l.dy)
	cc := ax*ax + ay*ay - c.rSquared

	return quadraticHitsUnit(a, b, cc)
}

// IntersectsEllipse reports whether the segment crosses the ellipse outline.
func (l Line) IntersectsEllipse(e Ellipse) bool {
	if l.lengthSquared == 0 || e.Degenerate() {
		return false
	}

	// Every point of the segment is within length of its start, so a start
	// farther than length+maxAxis from the center cannot reach the outline.
	if l.start.Dist(e.center) > l.length+e.maxAxis {
		return false
	}

	// Move the segment into the ellipse's own frame, where its axes are
	// aligned with x and y.
	local := l.Rotate(e.center, -e.keel)
	ax := local.start.X - e.center.X
	ay := local.start.Y - e.center.Y

	a := local.dx*local.dx/e.aSquared + local.dy*local.dy/e.bSquared
	b := 2 * (ax*local.dx/e.aSquared + ay*local.dy/e.bSquared)
	c := ax*ax/e.aSquared + ay*ay/e.bSquared - 1

	return quadraticHitsUnit(a, b, c)
}

// quadraticHitsUnit reports whether a*t² + b*t + c = 0 has a root strictly
// inside (0, 1).
func quadraticHitsUnit(a, b, c float64) bool {
	if a == 0 {
		return false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}

	sq := math.Sqrt(discriminant)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)

	return inUnit(t1) || inUnit(t2)
}

func inUnit(t float64) bool {
	return 0 < t && t < 1
}
