// Package orbits implements the Braille showcase: nested spinning triangles,
// a ring of orbiting circles and ellipse spinners in each corner, all inside
// a border.
package orbits

import (
	"math"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

// Scene draws the showcase.
type Scene struct{}

func init() {
	registry.Register("orbits", func() registry.Scene {
		return &Scene{}
	})
}

// ID returns the registry identifier.
func (s *Scene) ID() string { return "orbits" }

// Title returns the display name.
func (s *Scene) Title() string { return "Orbits (Braille)" }

// Defaults returns a Braille grid with timing diagnostics on.
func (s *Scene) Defaults() canvas.Config {
	return canvas.Config{
		CellWidth:    72,
		CellHeight:   36,
		Tileset:      canvas.Braille,
		MaxFramerate: 50,
		PrintTiming:  true,
	}
}

// Draw draws one frame.
func (s *Scene) Draw(g *canvas.Grid, frame int) {
	borders(g)
	triangles(g, frame)
	orbitingCircles(g, frame)
	cornerSpinners(g, frame)
}

func borders(d canvas.Drawer) {
	d.Line(0, 0, 100, 0)
	d.Line(100, 0, 100, 100)
	d.Line(100, 100, 0, 100)
	d.Line(0, 0, 0, 100)
}

// spinningTriangle draws an equilateral triangle of the given height,
// centered on the canvas and turned by angle.
func spinningTriangle(g *canvas.Grid, angle, height float64) {
	side := 2 * height / math.Sqrt(3)

	t := g.Transform()
	t.Translate(50, 50).Rotate(angle)

	x1, y1 := 0.0, -2*height/3
	x2, y2 := side/2, height/3
	x3, y3 := -side/2, height/3

	t.Line(x1, y1, x2, y2)
	t.Line(x2, y2, x3, y3)
	t.Line(x3, y3, x1, y1)
}

func triangles(g *canvas.Grid, frame int) {
	big := -(2 * math.Pi / 320) * float64(frame+240)
	medium := -(2 * math.Pi / 240) * float64(frame+180)
	small := -(2 * math.Pi / 160) * float64(frame+120)

	spinningTriangle(g, big, 43.3)
	spinningTriangle(g, medium, 21.65)
	spinningTriangle(g, small, 10.825)
}

func orbitingCircles(g *canvas.Grid, frame int) {
	t := g.Transform()
	t.Translate(50, 50).Rotate(float64(frame) * 2 * math.Pi / 240)
	for i := 0; i < 12; i++ {
		t.Rotate(2*math.Pi/12).Circle(0, -42, 8)
	}
}

func spinner(g *canvas.Grid, x, y, angle float64) {
	g.WithTransform(func(t *canvas.Transform) {
		t.Translate(x, y)
		for i := 0; i < 4; i++ {
			t.Ellipse(0, 0, 18, 6, angle-float64(i)*math.Pi/4)
		}
	})
}

func cornerSpinners(g *canvas.Grid, frame int) {
	slow := (2 * math.Pi / 80) * float64(frame+75)

	spinner(g, 3, 3, slow)
	spinner(g, 3, 97, slow)
	spinner(g, 97, 3, slow)
	spinner(g, 97, 97, slow)
}
