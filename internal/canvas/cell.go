// Package canvas rasterizes outlines into a character grid. Drawing happens
// in a fixed 100x100 logical space; each output character is a Cell whose
// four quadrants are marked whenever a shape outline crosses them.
package canvas

import "github.com/vovakirdan/tui-asc/internal/shapes"

// Quadrant identifies one quarter of a cell.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Bit returns the quadrant's weight in a tileset index.
func (q Quadrant) Bit() uint8 {
	return 8 >> uint(q)
}

// String returns a human-readable name for the quadrant.
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Cell is one output character. Its geometry is fixed when the grid is built;
// only the filled flags change from frame to frame.
type Cell struct {
	bounds    shapes.Rect
	quadrants [4]shapes.Rect
	filled    [4]bool
}

// NewCell creates a cell spanning the two corners.
func NewCell(topLeft, bottomRight shapes.Point) Cell {
	bounds := shapes.NewRect(topLeft, bottomRight)
	return Cell{
		bounds:    bounds,
		quadrants: bounds.Quadrants(),
	}
}

// Bounds returns the full cell rectangle.
func (c *Cell) Bounds() shapes.Rect {
	return c.bounds
}

// RenderLine marks every quadrant the segment crosses.
func (c *Cell) RenderLine(l shapes.Line) {
	// Most shapes miss most cells; one bounds test prunes four quadrant tests.
	if !c.bounds.OverlapsLine(l) {
		return
	}
	for i := range c.quadrants {
		c.filled[i] = c.filled[i] || c.quadrants[i].OverlapsLine(l)
	}
}

// RenderCircle marks every quadrant the circle outline crosses.
func (c *Cell) RenderCircle(circle shapes.Circle) {
	if !c.bounds.OverlapsCircle(circle) {
		return
	}
	for i := range c.quadrants {
		c.filled[i] = c.filled[i] || c.quadrants[i].OverlapsCircle(circle)
	}
}

// RenderEllipse marks every quadrant the ellipse outline crosses.
func (c *Cell) RenderEllipse(e shapes.Ellipse) {
	if !c.bounds.OverlapsEllipse(e) {
		return
	}
	for i := range c.quadrants {
		c.filled[i] = c.filled[i] || c.quadrants[i].OverlapsEllipse(e)
	}
}

// Filled reports whether quadrant q has been touched since the last Clear.
func (c *Cell) Filled(q Quadrant) bool {
	return c.filled[q]
}

// Mask packs the filled quadrants into a tileset index.
func (c *Cell) Mask() uint8 {
	var m uint8
	for q, on := range c.filled {
		if on {
			m |= Quadrant(q).Bit()
		}
	}
	return m
}

// Glyph returns the character for the current fill state.
func (c *Cell) Glyph(t Tileset) rune {
	return t.Glyph(c.Mask())
}

// Clear resets the fill state.
func (c *Cell) Clear() {
	c.filled = [4]bool{}
}
