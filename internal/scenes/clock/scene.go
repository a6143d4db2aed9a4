// Package clock implements a clock face with two sweeping hands.
package clock

import (
	"math"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

// Hand sweep rates in radians per frame. The long hand turns once every
// 40 frames, the short one once every 480.
const (
	longHandRate  = math.Pi / 20
	shortHandRate = math.Pi / 240
)

// Scene draws the clock.
type Scene struct{}

func init() {
	registry.Register("clock", func() registry.Scene {
		return &Scene{}
	})
}

// ID returns the registry identifier.
func (s *Scene) ID() string { return "clock" }

// Title returns the display name.
func (s *Scene) Title() string { return "Clock" }

// Defaults returns the stock grid configuration.
func (s *Scene) Defaults() canvas.Config {
	return canvas.DefaultConfig()
}

// Draw draws the face and both hands for frame.
func (s *Scene) Draw(g *canvas.Grid, frame int) {
	g.Circle(50, 50, 50)

	drawHand(g, longHandRate*float64(frame), 10, 40)
	drawHand(g, shortHandRate*float64(frame), 5, 20)
}

// drawHand draws a hand pointing up at angle 0, with a short tail behind the
// pivot.
func drawHand(g *canvas.Grid, angle, tail, length float64) {
	g.WithTransform(func(t *canvas.Transform) {
		t.Translate(50, 50).Rotate(angle)
		t.Line(0, tail, 0, -length)
	})
}
