// Package tui provides the Bubble Tea player for asc scenes.
// It handles the terminal UI loop, key bindings and the scene picker menu.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the next frame is due.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame period.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
