package canvas

import (
	"errors"
	"fmt"
	"time"
)

// DefaultMaxFramerate is used when a Config leaves MaxFramerate at zero.
const DefaultMaxFramerate = 20

// ErrInvalidConfig is returned (wrapped) for unusable grid configurations.
var ErrInvalidConfig = errors.New("canvas: invalid config")

// Config describes the output resolution and pacing of a grid. A cell is one
// character of output; the logical drawing space is always 100x100 no matter
// how many cells it is divided into.
type Config struct {
	// CellWidth is the number of characters per row.
	CellWidth int

	// CellHeight is the number of rows.
	CellHeight int

	// Tileset picks the glyph for each quadrant pattern.
	Tileset Tileset

	// MaxFramerate caps frames per second. Zero means DefaultMaxFramerate.
	MaxFramerate int

	// PrintTiming enables the rolling paint-time diagnostic line.
	PrintTiming bool
}

// DefaultConfig returns a 40x20 ASCII grid at the default framerate.
func DefaultConfig() Config {
	return Config{
		CellWidth:    40,
		CellHeight:   20,
		Tileset:      PureASCII,
		MaxFramerate: DefaultMaxFramerate,
	}
}

// Validate checks that the grid can be built.
func (c Config) Validate() error {
	if c.CellWidth <= 0 {
		return fmt.Errorf("%w: cell width must be positive, got %d", ErrInvalidConfig, c.CellWidth)
	}
	if c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell height must be positive, got %d", ErrInvalidConfig, c.CellHeight)
	}
	if c.MaxFramerate < 0 {
		return fmt.Errorf("%w: max framerate must not be negative, got %d", ErrInvalidConfig, c.MaxFramerate)
	}
	return nil
}

// Framerate returns MaxFramerate with the default applied.
func (c Config) Framerate() int {
	if c.MaxFramerate <= 0 {
		return DefaultMaxFramerate
	}
	return c.MaxFramerate
}

// FramePeriod is the minimum time between two frames, in whole milliseconds.
func (c Config) FramePeriod() time.Duration {
	return time.Duration(1000/c.Framerate()) * time.Millisecond
}
