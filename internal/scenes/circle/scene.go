// Package circle implements a still scene: a circle crossed by two diagonals.
package circle

import (
	"math"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

// Scene draws the same picture on every frame.
type Scene struct{}

func init() {
	registry.Register("circle", func() registry.Scene {
		return &Scene{}
	})
}

// ID returns the registry identifier.
func (s *Scene) ID() string { return "circle" }

// Title returns the display name.
func (s *Scene) Title() string { return "Just a Circle" }

// Defaults returns a small ASCII grid; the picture never changes, so one
// frame per second is plenty.
func (s *Scene) Defaults() canvas.Config {
	return canvas.Config{
		CellWidth:    30,
		CellHeight:   15,
		Tileset:      canvas.PureASCII,
		MaxFramerate: 1,
	}
}

// Draw draws the circle and its two crossing diameters.
func (s *Scene) Draw(g *canvas.Grid, _ int) {
	g.WithTransform(func(t *canvas.Transform) {
		t.Translate(50, 50)
		t.Circle(0, 0, 50)
		t.Rotate(math.Pi / 4)
		t.Line(-25, 0, 25, 0)
		t.Rotate(math.Pi / 2)
		t.Line(-25, 0, 25, 0)
	})
}
