package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Emitter receives finished frames.
type Emitter interface {
	// Emit displays one frame, top row first.
	Emit(rows []string) error

	// Status displays a diagnostic line below the frame.
	Status(line string) error
}

const (
	escClearScreen = "\x1b[2J"
	escHome        = "\x1b[1;1H"
)

// statusWidth is how far status lines are padded so a shorter line fully
// overwrites a longer one from an earlier frame.
const statusWidth = 72

// TerminalEmitter repaints frames in place on an ANSI terminal.
type TerminalEmitter struct {
	w       *bufio.Writer
	started bool
}

// NewTerminalEmitter creates an emitter writing escape sequences to w.
func NewTerminalEmitter(w io.Writer) *TerminalEmitter {
	return &TerminalEmitter{w: bufio.NewWriter(w)}
}

// Emit clears the screen on the first frame and homes the cursor on the rest,
// so each frame overwrites the previous one.
func (e *TerminalEmitter) Emit(rows []string) error {
	if !e.started {
		e.w.WriteString(escClearScreen)
		e.started = true
	}
	e.w.WriteString(escHome)
	for _, row := range rows {
		e.w.WriteString(row)
		e.w.WriteByte('\n')
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("engine: write frame: %w", err)
	}
	return nil
}

// Status prints line under the last frame.
func (e *TerminalEmitter) Status(line string) error {
	if pad := statusWidth - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	e.w.WriteString(line)
	e.w.WriteByte('\n')
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("engine: write status: %w", err)
	}
	return nil
}

// PlainEmitter writes frames as plain text with no escape sequences, one
// frame after another. It suits pipes and single-frame output.
type PlainEmitter struct {
	w io.Writer
}

// NewPlainEmitter creates an emitter writing raw rows to w.
func NewPlainEmitter(w io.Writer) *PlainEmitter {
	return &PlainEmitter{w: w}
}

// Emit writes each row followed by a newline.
func (e *PlainEmitter) Emit(rows []string) error {
	if _, err := io.WriteString(e.w, strings.Join(rows, "\n")+"\n"); err != nil {
		return fmt.Errorf("engine: write frame: %w", err)
	}
	return nil
}

// Status writes line followed by a newline.
func (e *PlainEmitter) Status(line string) error {
	if _, err := io.WriteString(e.w, line+"\n"); err != nil {
		return fmt.Errorf("engine: write status: %w", err)
	}
	return nil
}
