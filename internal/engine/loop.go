// Package engine runs the frame loop: it hands a cleared grid to a drawing
// callback, emits the rendered characters and paces frames to the grid's
// maximum framerate.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asc/internal/canvas"
)

// DrawFunc draws one frame. The grid is empty when it is called and frame
// counts up from 0. It must not keep the grid after returning.
type DrawFunc func(g *canvas.Grid, frame int)

type options struct {
	clock     Clock
	emitter   Emitter
	logger    *log.Logger
	maxFrames int
}

// Option customizes Run and Once.
type Option func(*options)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithEmitter replaces the default terminal emitter on stdout.
func WithEmitter(e Emitter) Option {
	return func(o *options) { o.emitter = e }
}

// WithLogger sets the logger used for frame diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxFrames stops Run after n frames. Zero means no limit.
func WithMaxFrames(n int) Option {
	return func(o *options) { o.maxFrames = n }
}

func buildOptions(opts []Option) options {
	o := options{
		clock:   SystemClock(),
		emitter: NewTerminalEmitter(os.Stdout),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Run draws frames until ctx is done, the frame limit is reached or the
// emitter fails. Each frame is drawn, emitted and cleared; the loop then
// sleeps for whatever is left of the frame period. It returns ctx.Err() when
// cancelled and nil when a frame limit was reached.
func Run(ctx context.Context, cfg canvas.Config, draw DrawFunc, opts ...Option) error {
	o := buildOptions(opts)

	grid, err := canvas.NewGrid(cfg)
	if err != nil {
		return err
	}

	period := grid.Config().FramePeriod()
	timing := NewTiming()
	o.logger.Debug("starting frame loop",
		"width", grid.Width(), "height", grid.Height(), "period", period)

	for frame := 0; o.maxFrames == 0 || frame < o.maxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := o.clock.Now()

		draw(grid, frame)
		if err := o.emitter.Emit(grid.Rows()); err != nil {
			return fmt.Errorf("engine: frame %d: %w", frame, err)
		}
		grid.Clear()

		spent := o.clock.Now().Sub(start)
		if grid.Config().PrintTiming {
			timing.Record(frame, spent)
			if err := o.emitter.Status(timing.Line(frame)); err != nil {
				return fmt.Errorf("engine: frame %d: %w", frame, err)
			}
		}
		if spent > period {
			o.logger.Debug("frame overran its period", "frame", frame, "spent", spent, "period", period)
		}

		if d := remaining(period, spent); d > 0 {
			o.clock.Sleep(d)
		}
	}

	return nil
}

// Once draws and emits a single frame with no pacing.
func Once(cfg canvas.Config, draw func(g *canvas.Grid), opts ...Option) error {
	o := buildOptions(opts)

	grid, err := canvas.NewGrid(cfg)
	if err != nil {
		return err
	}

	draw(grid)
	if err := o.emitter.Emit(grid.Rows()); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}
