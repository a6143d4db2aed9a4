package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
	_ "github.com/vovakirdan/tui-asc/internal/scenes/circle"
	_ "github.com/vovakirdan/tui-asc/internal/scenes/clock"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return model, cmd
}

func TestMenuSelectsScene(t *testing.T) {
	m := NewMenuModel(nil)

	// Scenes are listed by ID: circle, then clock.
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != "clock" {
		t.Errorf("Selected() = %q, expected %q", m.Selected(), "clock")
	}
	if cmd == nil {
		t.Fatal("expected quit command after selecting")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(nil)
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if !m.IsQuitting() {
		t.Error("expected IsQuitting() after q")
	}
	if m.Selected() != "" {
		t.Errorf("Selected() = %q, expected none", m.Selected())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestMenuViewShowsResolvedGrid(t *testing.T) {
	resolve := func(s registry.Scene) (canvas.Config, error) {
		if s.ID() == "clock" {
			return canvas.Config{}, errors.New("broken")
		}
		cfg := s.Defaults()
		cfg.CellWidth = 64
		cfg.Tileset = canvas.Braille
		return cfg, nil
	}

	m := NewMenuModel(resolve)
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()

	for _, want := range []string{"Just a Circle", "64x15", "braille", "Clock", "enter"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
