package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/engine"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

// Model is the Bubble Tea model for playing a scene.
type Model struct {
	scene    registry.Scene
	grid     *canvas.Grid
	timing   *engine.Timing
	logger   *log.Logger
	keys     PlayerKeyMap
	help     help.Model
	rows     []string
	frame    int // next frame to draw
	paused   bool
	quitting bool
}

// NewModel creates a new Bubble Tea model that plays scene on a grid built
// from cfg.
func NewModel(scene registry.Scene, cfg canvas.Config, logger *log.Logger) (Model, error) {
	grid, err := canvas.NewGrid(cfg)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		scene:  scene,
		grid:   grid,
		timing: engine.NewTiming(),
		logger: logger,
		keys:   DefaultPlayerKeyMap(),
		help:   help.New(),
		rows:   grid.Rows(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.grid.Config().FramePeriod())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			m = m.advance()
		}
		return m, tickCmd(m.grid.Config().FramePeriod())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "scene", m.scene.ID(), "paused", m.paused, "frame", m.frame)

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m = m.advance()
		}

	case key.Matches(msg, m.keys.Tileset):
		// The grid still holds the last frame, so it can be re-rendered
		// without drawing again.
		m.grid.SetTileset(canvas.NextTileset(m.grid.Tileset()))
		m.rows = m.grid.Rows()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// advance draws the next frame into a cleared grid.
func (m Model) advance() Model {
	start := time.Now()

	m.grid.Clear()
	m.scene.Draw(m.grid, m.frame)
	m.rows = m.grid.Rows()

	spent := time.Since(start)
	m.timing.Record(m.frame, spent)
	if period := m.grid.Config().FramePeriod(); spent > period {
		m.logger.Debug("frame overran its period", "frame", m.frame, "spent", spent, "period", period)
	}

	m.frame++
	return m
}

// Frame returns the number of frames drawn so far.
func (m Model) Frame() int {
	return m.frame
}

// Paused reports whether playback is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Rows returns the rows of the last drawn frame.
func (m Model) Rows() []string {
	return m.rows
}

// Tileset returns the tileset currently in use.
func (m Model) Tileset() canvas.Tileset {
	return m.grid.Tileset()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(m.scene.Title()) +
		statusStyle.Render(fmt.Sprintf("  frame %d  %dx%d  %s  %d fps",
			m.frame, m.grid.Width(), m.grid.Height(),
			canvas.TilesetName(m.grid.Tileset()), m.grid.Config().Framerate()))
	if m.paused {
		header += "  " + pausedStyle.Render("PAUSED")
	}

	parts := []string{header, RenderRows(m.rows)}
	if m.grid.Config().PrintTiming {
		parts = append(parts, statusStyle.Render(m.timing.Line(m.frame)))
	}
	parts = append(parts, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the Bubble Tea program for scene and blocks until the user quits.
func Run(scene registry.Scene, cfg canvas.Config, logger *log.Logger) error {
	model, err := NewModel(scene, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
