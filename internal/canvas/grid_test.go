package canvas

import (
	"errors"
	"strings"
	"testing"
)

func newTestGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(Config{CellWidth: w, CellHeight: h, Tileset: PureASCII})
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error: %v", w, h, err)
	}
	return g
}

func masks(g *Grid) [][]uint8 {
	out := make([][]uint8, g.Height())
	for row := range out {
		out[row] = make([]uint8, g.Width())
		for col := range out[row] {
			out[row][col] = g.Mask(row, col)
		}
	}
	return out
}

func equalMasks(a, b [][]uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{CellWidth: 0, CellHeight: 10}},
		{"negative height", Config{CellWidth: 10, CellHeight: -1}},
		{"negative framerate", Config{CellWidth: 10, CellHeight: 10, MaxFramerate: -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewGrid() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewGridDefaults(t *testing.T) {
	g, err := NewGrid(Config{CellWidth: 3, CellHeight: 2})
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}

	if g.Tileset() != PureASCII {
		t.Error("expected empty tileset to default to PureASCII")
	}
	if g.Config().MaxFramerate != DefaultMaxFramerate {
		t.Errorf("MaxFramerate = %d, expected %d", g.Config().MaxFramerate, DefaultMaxFramerate)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("size = %dx%d, expected 3x2", g.Width(), g.Height())
	}

	rows := g.Rows()
	if len(rows) != 2 || rows[0] != "   " || rows[1] != "   " {
		t.Errorf("Rows() = %q, expected two blank rows of 3", rows)
	}
}

func TestGridCellsCoverLogicalSpace(t *testing.T) {
	g := newTestGrid(t, 8, 5)

	first := g.Cell(0, 0).Bounds()
	last := g.Cell(4, 7).Bounds()

	if first.TopLeft().X >= 0 || first.TopLeft().Y >= 0 {
		t.Errorf("first cell starts at %+v, expected just below the origin", first.TopLeft())
	}
	if last.BottomRight().X <= Size || last.BottomRight().Y <= Size {
		t.Errorf("last cell ends at %+v, expected just past %v", last.BottomRight(), Size)
	}

	w := first.BottomRight().X - first.TopLeft().X
	h := first.BottomRight().Y - first.TopLeft().Y
	if w < 12.49 || w > 12.51 || h < 19.99 || h > 20.01 {
		t.Errorf("cell size = %vx%v, expected about 12.5x20", w, h)
	}
}

func TestGridOffsetDiagonal(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	g.Line(0, 2.5, 97.5, 100)

	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			var want uint8
			switch col {
			case row:
				// Enters top-left, turns down through bottom-left, exits bottom-right.
				want = TopLeft.Bit() | BottomLeft.Bit() | BottomRight.Bit()
			case row - 1:
				// Clips the top-right corner on its way to the next column.
				want = TopRight.Bit()
			}
			if got := g.Mask(row, col); got != want {
				t.Errorf("Mask(%d, %d) = %04b, expected %04b", row, col, got, want)
			}
		}
	}

	expected := strings.Join([]string{
		"b         ",
		"'b        ",
		" 'b       ",
		"  'b      ",
		"   'b     ",
		"    'b    ",
		"     'b   ",
		"      'b  ",
		"       'b ",
		"        'b",
	}, "\n")
	if got := g.String(); got != expected {
		t.Errorf("String() mismatch:\nexpected:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestGridVerticalLine(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	g.Line(23, -1, 23, 101)

	for row, line := range g.Rows() {
		if line != "  [       " {
			t.Errorf("row %d = %q, expected left half of column 2 filled", row, line)
		}
	}
}

func TestGridPartialLine(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	g.Line(32, 48, 63, 48)

	rows := g.Rows()
	if rows[4] != "   ___,   " {
		t.Errorf("row 4 = %q, expected %q", rows[4], "   ___,   ")
	}
	for row, line := range rows {
		if row != 4 && strings.TrimSpace(line) != "" {
			t.Errorf("row %d = %q, expected blank", row, line)
		}
	}
}

func TestGridBumperRegistersEdges(t *testing.T) {
	g := newTestGrid(t, 4, 2)

	g.Line(0, 0, 100, 0)
	if rows := g.Rows(); rows[0] != `""""` || rows[1] != "    " {
		t.Errorf("top border rows = %q", rows)
	}

	g.Clear()
	g.Line(0, 100, 100, 100)
	if rows := g.Rows(); rows[0] != "    " || rows[1] != "____" {
		t.Errorf("bottom border rows = %q", rows)
	}
}

func TestGridCircleRotationallySymmetric(t *testing.T) {
	// Rotating the grid a quarter turn clockwise moves each quadrant too:
	// top-left becomes top-right, top-right becomes bottom-right and so on.
	rotateMask := func(m uint8) uint8 {
		var out uint8
		if m&BottomLeft.Bit() != 0 {
			out |= TopLeft.Bit()
		}
		if m&TopLeft.Bit() != 0 {
			out |= TopRight.Bit()
		}
		if m&TopRight.Bit() != 0 {
			out |= BottomRight.Bit()
		}
		if m&BottomRight.Bit() != 0 {
			out |= BottomLeft.Bit()
		}
		return out
	}

	for _, n := range []int{10, 16, 20, 31} {
		g := newTestGrid(t, n, n)
		g.Circle(50, 50, 50)

		m := masks(g)
		rotated := make([][]uint8, n)
		for r := range rotated {
			rotated[r] = make([]uint8, n)
			for c := range rotated[r] {
				rotated[r][c] = rotateMask(m[n-1-c][r])
			}
		}

		if !equalMasks(m, rotated) {
			t.Errorf("%dx%d circle is not symmetric under a quarter turn:\n%s", n, n, g.String())
		}
	}
}

func TestGridDrawIsIdempotentWithinFrame(t *testing.T) {
	once := newTestGrid(t, 12, 9)
	once.Line(3, 7, 88, 61)
	once.Circle(40, 40, 22)

	twice := newTestGrid(t, 12, 9)
	twice.Line(3, 7, 88, 61)
	twice.Line(3, 7, 88, 61)
	twice.Circle(40, 40, 22)
	twice.Circle(40, 40, 22)

	if !equalMasks(masks(once), masks(twice)) {
		t.Errorf("drawing twice changed the frame:\nonce:\n%s\n\ntwice:\n%s", once, twice)
	}
}

func TestGridClearIsolatesFrames(t *testing.T) {
	g := newTestGrid(t, 12, 9)
	g.Line(3, 7, 88, 61)
	g.Ellipse(60, 30, 20, 8, 0.5)

	if strings.TrimSpace(g.String()) == "" {
		t.Fatal("expected shapes to be visible before Clear")
	}

	g.Clear()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Mask(row, col) != 0 {
				t.Fatalf("cell (%d, %d) still filled after Clear", row, col)
			}
		}
	}
}

func TestGridSetTileset(t *testing.T) {
	g := newTestGrid(t, 4, 2)
	g.Line(0, 0, 100, 0)

	g.SetTileset(Braille)
	if rows := g.Rows(); rows[0] != "⠛⠛⠛⠛" {
		t.Errorf("braille top row = %q", rows[0])
	}
}

func TestGridWriteTo(t *testing.T) {
	g := newTestGrid(t, 4, 2)
	g.Line(0, 100, 100, 100)

	var sb strings.Builder
	n, err := g.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if sb.String() != "    \n____\n" {
		t.Errorf("WriteTo() wrote %q", sb.String())
	}
	if n != int64(sb.Len()) {
		t.Errorf("WriteTo() = %d, expected %d", n, sb.Len())
	}
}

func TestGridMaskOutOfRange(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	if g.Mask(-1, 0) != 0 || g.Mask(0, 5) != 0 || g.Mask(2, 0) != 0 {
		t.Error("expected out-of-range masks to be empty")
	}
}
