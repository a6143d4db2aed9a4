// Package tcell paints engine frames onto a tcell screen. It is the
// alternative to the plain ANSI emitter for terminals where cursor-home
// redraws flicker.
package tcell

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Emitter implements engine.Emitter on a tcell.Screen. Rows start at the top
// left corner and the status line goes right below them.
type Emitter struct {
	screen    tcell.Screen
	style     tcell.Style
	statusRow int
	cleared   bool
}

// NewEmitter wraps an initialized screen.
func NewEmitter(screen tcell.Screen) *Emitter {
	return &Emitter{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Open initializes the terminal screen and returns an emitter for it.
// Close must be called to restore the terminal.
func Open() (*Emitter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell: failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell: failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	return NewEmitter(screen), nil
}

// Emit paints rows and shows them.
func (e *Emitter) Emit(rows []string) error {
	if !e.cleared {
		e.screen.Clear()
		e.cleared = true
	}

	for y, row := range rows {
		e.putLine(y, row)
	}
	e.statusRow = len(rows)

	e.screen.Show()
	return nil
}

// Status paints line under the last emitted frame, blanking any leftover
// text from a longer previous line.
func (e *Emitter) Status(line string) error {
	n := e.putLine(e.statusRow, line)
	w, _ := e.screen.Size()
	for x := n; x < w; x++ {
		e.screen.SetContent(x, e.statusRow, ' ', nil, e.style)
	}

	e.screen.Show()
	return nil
}

// putLine writes s at row y and returns the number of cells used.
func (e *Emitter) putLine(y int, s string) int {
	x := 0
	for _, r := range s {
		e.screen.SetContent(x, y, r, nil, e.style)
		x++
	}
	return x
}

// WatchKeys polls screen events until the screen is closed and calls cancel
// when Esc, Ctrl+C or q is pressed.
func (e *Emitter) WatchKeys(cancel context.CancelFunc) {
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			if key, ok := ev.(*tcell.EventKey); ok && isQuitKey(key) {
				cancel()
				return
			}
		}
	}()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Close restores the terminal.
func (e *Emitter) Close() {
	e.screen.Fini()
}
