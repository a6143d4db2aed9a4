// Package shapes implements a busy scene that exercises every primitive:
// sliding fans of lines, spinning lines, pulsing circles and rosettes of
// rotating ellipses.
package shapes

import (
	"math"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

// Scene draws lots of shapes.
type Scene struct{}

func init() {
	registry.Register("shapes", func() registry.Scene {
		return &Scene{}
	})
}

// ID returns the registry identifier.
func (s *Scene) ID() string { return "shapes" }

// Title returns the display name.
func (s *Scene) Title() string { return "Lots of Shapes" }

// Defaults returns a large ASCII grid at 60 fps.
func (s *Scene) Defaults() canvas.Config {
	return canvas.Config{
		CellWidth:    96,
		CellHeight:   48,
		Tileset:      canvas.PureASCII,
		MaxFramerate: 60,
	}
}

// Draw draws one frame.
func (s *Scene) Draw(g *canvas.Grid, frame int) {
	slidingAngles(g, frame)
	spinningLines(g, frame)
	circles(g, frame)
	ellipses(g, frame)
}

// fan is the set of segments hanging from the top bar, as {x1, y1, x2, y2}.
var fan = [][4]float64{
	{15, 5, 1.5, 8},
	{20, 5, 8, 9},
	{25, 5, 12.5, 10},
	{30, 5, 18, 11},
	{35, 5, 24.5, 12},
	{40, 5, 32, 13},
	{45, 5, 41, 14},
	{50, 5, 50, 15},
	{55, 5, 59, 14},
	{60, 5, 68, 13},
	{65, 5, 75.5, 12},
	{70, 5, 82, 11},
	{75, 5, 87.5, 10},
	{80, 5, 92, 9},
	{85, 5, 98.5, 8},
}

func slidingAngles(g *canvas.Grid, frame int) {
	angle := (2 * math.Pi / 150) * float64(frame)

	t := g.Transform()
	t.Translate(math.Cos(angle)*4, 0)

	t.Line(40, 3, 60, 3)
	for _, l := range fan {
		t.Line(l[0], l[1], l[2], l[3])
	}
}

func spinningLines(g *canvas.Grid, frame int) {
	angle := (2 * math.Pi / 180) * float64(frame)
	x, y := math.Cos(angle), math.Sin(angle)

	g.Line(50-x*5, 50-y*5, 50+x*30, 50+y*30)
	g.Line(50-y*3, 50-x*3, 50+y*10, 50+x*10)
	g.Line(70-y*5, 30-x*5, 20+y*10, 30+x*10)
}

func circles(g *canvas.Grid, frame int) {
	slow := (2 * math.Pi / 120) * float64(frame)
	x, y := math.Cos(slow), math.Sin(slow)

	g.Circle(50+x*10, 50+y*10, 10)
	g.Circle(50+x*5, 85, 10+x*10)
	g.Circle(50+x*5, 85, 10+y*10)
}

func ellipses(g *canvas.Grid, frame int) {
	slow := (2 * math.Pi / 240) * float64(frame)
	x := math.Cos(slow)

	g.Ellipse(20, 70, 10-8*x, 10+8*x, 0)
	g.Ellipse(20, 70, 10-8*x, 10+8*x, math.Pi/4)
	g.Ellipse(20, 70, 4, 6, slow)

	for i := 0; i < 4; i++ {
		g.Ellipse(80, 30, 12, 6, slow-float64(i)*math.Pi/4)
	}
}
