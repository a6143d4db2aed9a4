package orbits

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

func render(t *testing.T, s registry.Scene, frame int) string {
	t.Helper()
	g, err := canvas.NewGrid(s.Defaults())
	if err != nil {
		t.Fatalf("NewGrid(Defaults()) error: %v", err)
	}
	s.Draw(g, frame)
	return g.String()
}

func TestRegistered(t *testing.T) {
	s, err := registry.Create("orbits")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if s.ID() != "orbits" {
		t.Errorf("ID() = %q, expected %q", s.ID(), "orbits")
	}
	if err := s.Defaults().Validate(); err != nil {
		t.Errorf("Defaults() invalid: %v", err)
	}
}

func TestDrawProducesOutline(t *testing.T) {
	s := &Scene{}
	blank := string(s.Defaults().Tileset[0])

	for _, frame := range []int{0, 1, 37, 500} {
		out := render(t, s, frame)
		if strings.Trim(strings.ReplaceAll(out, "\n", ""), blank) == "" {
			t.Errorf("frame %d rendered nothing", frame)
		}
	}
}

func TestAnimates(t *testing.T) {
	s := &Scene{}
	if render(t, s, 0) == render(t, s, 10) {
		t.Error("expected frames 0 and 10 to differ")
	}
}
