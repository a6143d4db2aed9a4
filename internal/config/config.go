// Package config provides YAML-based configuration loading for the asc
// command: grid overrides applied on top of a scene's own defaults, and
// logging settings.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-asc/internal/canvas"
)

// Config is the root of the YAML file.
type Config struct {
	Grid GridConfig `yaml:"grid"`
	Log  LogConfig  `yaml:"log"`
}

// GridConfig overrides a scene's grid defaults. Zero values leave the scene's
// choice alone.
type GridConfig struct {
	CellWidth    int    `yaml:"cell_width"`
	CellHeight   int    `yaml:"cell_height"`
	Tileset      string `yaml:"tileset"`       // "ascii" or "braille"
	MaxFramerate int    `yaml:"max_framerate"` // frames per second cap
	PrintTiming  *bool  `yaml:"print_timing"`
	FitTerminal  bool   `yaml:"fit_terminal"` // size the grid to the terminal
}

// LogConfig defines logging output.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // empty = stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Apply overlays the non-zero grid settings onto base and validates the
// result.
func (g GridConfig) Apply(base canvas.Config) (canvas.Config, error) {
	cfg := base

	if g.CellWidth != 0 {
		cfg.CellWidth = g.CellWidth
	}
	if g.CellHeight != 0 {
		cfg.CellHeight = g.CellHeight
	}
	if g.Tileset != "" {
		ts, err := canvas.TilesetByName(g.Tileset)
		if err != nil {
			return base, fmt.Errorf("config: %w", err)
		}
		cfg.Tileset = ts
	}
	if g.MaxFramerate != 0 {
		cfg.MaxFramerate = g.MaxFramerate
	}
	if g.PrintTiming != nil {
		cfg.PrintTiming = *g.PrintTiming
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that can be rejected before a scene is known.
func (c Config) Validate() error {
	if c.Grid.CellWidth < 0 || c.Grid.CellHeight < 0 {
		return fmt.Errorf("config: grid size must not be negative, got %dx%d",
			c.Grid.CellWidth, c.Grid.CellHeight)
	}
	if c.Grid.MaxFramerate < 0 {
		return fmt.Errorf("config: max_framerate must not be negative, got %d", c.Grid.MaxFramerate)
	}
	if c.Grid.Tileset != "" {
		if _, err := canvas.TilesetByName(c.Grid.Tileset); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
