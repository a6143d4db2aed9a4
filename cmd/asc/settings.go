package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/config"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

// margin is the room a front end needs around the grid.
type margin struct {
	cols, rows int
}

var (
	playerMargin = margin{cols: 2, rows: 5} // border, header and help line
	loopMargin   = margin{cols: 0, rows: 1} // status line
	onceMargin   = margin{}
)

// resolveGrid layers the grid settings for scene: scene defaults, then the
// config file, then terminal fitting, then explicit flags.
func resolveGrid(scene registry.Scene, grid config.GridConfig, flags *pflag.FlagSet, m margin) (canvas.Config, error) {
	cfg, err := grid.Apply(scene.Defaults())
	if err != nil {
		return cfg, err
	}

	fit, err := flags.GetBool("fit")
	if err != nil {
		return cfg, err
	}
	if fit || grid.FitTerminal {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			logger.Warn("cannot read terminal size, keeping grid size", "error", err)
		} else {
			cfg = fitGrid(cfg, w, h, m)
		}
	}

	cfg, err = applyFlags(cfg, flags)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("scene %s: %w", scene.ID(), err)
	}
	return cfg, nil
}

// fitGrid sizes the grid to a terminal of cols x rows, minus the margin.
// Dimensions that would not leave at least one cell are left alone.
func fitGrid(cfg canvas.Config, cols, rows int, m margin) canvas.Config {
	if w := cols - m.cols; w > 0 {
		cfg.CellWidth = w
	}
	if h := rows - m.rows; h > 0 {
		cfg.CellHeight = h
	}
	return cfg
}

// applyFlags overrides cfg with the grid flags that were set explicitly.
func applyFlags(cfg canvas.Config, flags *pflag.FlagSet) (canvas.Config, error) {
	if flags.Changed("width") {
		v, err := flags.GetInt("width")
		if err != nil {
			return cfg, err
		}
		cfg.CellWidth = v
	}
	if flags.Changed("height") {
		v, err := flags.GetInt("height")
		if err != nil {
			return cfg, err
		}
		cfg.CellHeight = v
	}
	if flags.Changed("tileset") {
		name, err := flags.GetString("tileset")
		if err != nil {
			return cfg, err
		}
		ts, err := canvas.TilesetByName(name)
		if err != nil {
			return cfg, err
		}
		cfg.Tileset = ts
	}
	if flags.Changed("fps") {
		v, err := flags.GetInt("fps")
		if err != nil {
			return cfg, err
		}
		cfg.MaxFramerate = v
	}
	if flags.Changed("timing") {
		v, err := flags.GetBool("timing")
		if err != nil {
			return cfg, err
		}
		cfg.PrintTiming = v
	}
	return cfg, nil
}

// createScene looks up a scene and resolves its grid, exiting on failure.
func createScene(id string, flags *pflag.FlagSet, m margin) (registry.Scene, canvas.Config) {
	if !registry.Exists(id) {
		exitf("Error: unknown scene %q\nRun 'asc list' to see available scenes.\n", id)
	}

	scene, err := registry.Create(id)
	if err != nil {
		exitf("Error creating scene: %v\n", err)
	}

	cfg, err := resolveGrid(scene, appConfig.Grid, flags, m)
	if err != nil {
		exitf("Error: %v\n", err)
	}

	logger.Info("scene ready",
		"scene", id,
		"width", cfg.CellWidth,
		"height", cfg.CellHeight,
		"tileset", canvas.TilesetName(cfg.Tileset),
		"fps", cfg.Framerate())
	return scene, cfg
}
