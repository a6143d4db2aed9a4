package canvas

import (
	"io"
	"strings"

	"github.com/vovakirdan/tui-asc/internal/shapes"
)

// Size is the extent of the logical drawing space on both axes.
const Size = 100.0

// bumper pads the logical space so outlines drawn exactly on x=100 or y=100
// still cross the last row and column of cells instead of running along
// their outer edge.
const bumper = 0.00001

// Drawer is the drawing surface handed to scenes. Both Grid and Transform
// implement it.
type Drawer interface {
	// Line draws a segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64)

	// Circle draws a circle of radius r centered at (x, y).
	Circle(x, y, r float64)

	// Ellipse draws an ellipse centered at (x, y) with semi-axes a and b,
	// rotated by keel radians.
	Ellipse(x, y, a, b, keel float64)
}

// Grid is a 100x100 logical canvas divided into CellWidth x CellHeight
// character cells, with (0, 0) in the top-left corner.
type Grid struct {
	cells  [][]Cell
	config Config
}

var _ Drawer = (*Grid)(nil)

// NewGrid builds the cells for cfg. Cell geometry is computed once here and
// reused for every frame.
func NewGrid(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Tileset == (Tileset{}) {
		cfg.Tileset = PureASCII
	}
	cfg.MaxFramerate = cfg.Framerate()

	xUnit := (Size + bumper) / float64(cfg.CellWidth)
	yUnit := (Size + bumper) / float64(cfg.CellHeight)

	cells := make([][]Cell, cfg.CellHeight)
	for row := range cells {
		cells[row] = make([]Cell, cfg.CellWidth)
		y := float64(row)*yUnit - bumper/2
		for col := range cells[row] {
			x := float64(col)*xUnit - bumper/2
			cells[row][col] = NewCell(shapes.Pt(x, y), shapes.Pt(x+xUnit, y+yUnit))
		}
	}

	return &Grid{cells: cells, config: cfg}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.config.CellWidth
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.config.CellHeight
}

// Config returns the configuration the grid was built with, defaults applied.
func (g *Grid) Config() Config {
	return g.config
}

// Tileset returns the active tileset.
func (g *Grid) Tileset() Tileset {
	return g.config.Tileset
}

// SetTileset switches the glyph table used by Rows and String.
func (g *Grid) SetTileset(t Tileset) {
	g.config.Tileset = t
}

// Line draws a segment.
func (g *Grid) Line(x1, y1, x2, y2 float64) {
	l := shapes.NewLine(shapes.Pt(x1, y1), shapes.Pt(x2, y2))
	g.eachCell(func(c *Cell) {
		c.RenderLine(l)
	})
}

// Circle draws a circle outline.
func (g *Grid) Circle(x, y, r float64) {
	circle := shapes.NewCircle(shapes.Pt(x, y), r)
	g.eachCell(func(c *Cell) {
		c.RenderCircle(circle)
	})
}

// Ellipse draws an ellipse outline.
func (g *Grid) Ellipse(x, y, a, b, keel float64) {
	e := shapes.NewEllipse(shapes.Pt(x, y), a, b, keel)
	g.eachCell(func(c *Cell) {
		c.RenderEllipse(e)
	})
}

// Cell returns the cell at row, col. It panics when out of range.
func (g *Grid) Cell(row, col int) *Cell {
	return &g.cells[row][col]
}

// Mask returns the quadrant mask of the cell at row, col.
// Out-of-range coordinates report an empty cell.
func (g *Grid) Mask(row, col int) uint8 {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return 0
	}
	return g.cells[row][col].Mask()
}

// Clear empties every cell for the next frame.
func (g *Grid) Clear() {
	g.eachCell(func(c *Cell) {
		c.Clear()
	})
}

// Rows renders the grid, top row first.
func (g *Grid) Rows() []string {
	rows := make([]string, len(g.cells))
	var sb strings.Builder
	for y, row := range g.cells {
		sb.Reset()
		for x := range row {
			sb.WriteRune(row[x].Glyph(g.config.Tileset))
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the grid with rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// WriteTo writes every row followed by a newline.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range g.Rows() {
		n, err := io.WriteString(w, row+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (g *Grid) eachCell(f func(c *Cell)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			f(&g.cells[y][x])
		}
	}
}
