package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

// ConfigFunc resolves the grid configuration a scene will be played with.
type ConfigFunc func(registry.Scene) (canvas.Config, error)

// SceneDefaults resolves a scene to its own defaults.
func SceneDefaults(s registry.Scene) (canvas.Config, error) {
	return s.Defaults(), nil
}

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	quitting bool
	selected string
}

// NewMenuModel creates a menu listing every registered scene. resolve is
// used to show the grid each scene will get; nil means scene defaults.
func NewMenuModel(resolve ConfigFunc) MenuModel {
	if resolve == nil {
		resolve = SceneDefaults
	}

	scenes := registry.List()
	rows := make([]table.Row, 0, len(scenes))
	for _, info := range scenes {
		rows = append(rows, sceneRow(info, resolve))
	}

	columns := []table.Column{
		{Title: "Scene", Width: 10},
		{Title: "Title", Width: 30},
		{Title: "Grid", Width: 8},
		{Title: "Tileset", Width: 8},
		{Title: "FPS", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2), // Header plus its bottom border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MenuModel{
		table: t,
		help:  help.New(),
		keys:  DefaultMenuKeyMap(),
	}
}

func sceneRow(info registry.SceneInfo, resolve ConfigFunc) table.Row {
	row := table.Row{info.ID, info.Title, "-", "-", "-"}

	scene, err := registry.Create(info.ID)
	if err != nil {
		return row
	}
	cfg, err := resolve(scene)
	if err != nil {
		return row
	}

	row[2] = fmt.Sprintf("%dx%d", cfg.CellWidth, cfg.CellHeight)
	row[3] = canvas.TilesetName(cfg.Tileset)
	row[4] = strconv.Itoa(cfg.Framerate())
	return row
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
				return m, tea.Quit // Exit menu to start the scene
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass navigation to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		titleStyle.Render(centerText("A S C", m.width)),
		statusStyle.Render(centerText("Select a scene", m.width)),
		"",
		frameStyle.Render(m.table.View()),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Selected returns the ID of the chosen scene, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SceneID string
	Quit    bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(resolve ConfigFunc) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(resolve),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == "" {
		return MenuResult{Quit: true}, nil
	}
	return MenuResult{SceneID: m.Selected()}, nil
}
