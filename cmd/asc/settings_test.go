package main

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/config"
)

type fixedScene struct{}

func (fixedScene) ID() string    { return "fixed" }
func (fixedScene) Title() string { return "Fixed" }
func (fixedScene) Defaults() canvas.Config {
	return canvas.Config{CellWidth: 30, CellHeight: 15, Tileset: canvas.PureASCII, MaxFramerate: 1}
}
func (fixedScene) Draw(g *canvas.Grid, _ int) { g.Circle(50, 50, 40) }

// newFlags mirrors the root command's persistent grid flags.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("width", 0, "")
	fs.Int("height", 0, "")
	fs.String("tileset", "", "")
	fs.Int("fps", 0, "")
	fs.Bool("timing", false, "")
	fs.Bool("fit", false, "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error: %v", args, err)
	}
	return fs
}

func TestApplyFlags(t *testing.T) {
	base := fixedScene{}.Defaults()

	tests := []struct {
		name     string
		args     []string
		expected canvas.Config
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: base,
		},
		{
			name: "size and tileset",
			args: []string{"--width", "80", "--height", "40", "--tileset", "braille"},
			expected: canvas.Config{
				CellWidth: 80, CellHeight: 40, Tileset: canvas.Braille, MaxFramerate: 1,
			},
		},
		{
			name: "framerate and timing",
			args: []string{"--fps", "25", "--timing"},
			expected: canvas.Config{
				CellWidth: 30, CellHeight: 15, Tileset: canvas.PureASCII, MaxFramerate: 25, PrintTiming: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyFlags(base, newFlags(t, tt.args...))
			if err != nil {
				t.Fatalf("applyFlags() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("applyFlags() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestApplyFlagsUnknownTileset(t *testing.T) {
	_, err := applyFlags(fixedScene{}.Defaults(), newFlags(t, "--tileset", "hex"))
	if err == nil || !strings.Contains(err.Error(), "unknown tileset") {
		t.Errorf("applyFlags() error = %v, expected unknown tileset", err)
	}
}

func TestFitGrid(t *testing.T) {
	base := fixedScene{}.Defaults()

	tests := []struct {
		name       string
		cols, rows int
		m          margin
		expectedW  int
		expectedH  int
	}{
		{"player", 120, 40, playerMargin, 118, 35},
		{"loop", 80, 24, loopMargin, 80, 23},
		{"once", 80, 24, onceMargin, 80, 24},
		{"too small keeps size", 2, 5, playerMargin, 30, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitGrid(base, tt.cols, tt.rows, tt.m)
			if got.CellWidth != tt.expectedW || got.CellHeight != tt.expectedH {
				t.Errorf("fitGrid() = %dx%d, expected %dx%d",
					got.CellWidth, got.CellHeight, tt.expectedW, tt.expectedH)
			}
		})
	}
}

func TestResolveGridLayers(t *testing.T) {
	grid := config.GridConfig{CellWidth: 50, Tileset: "braille", MaxFramerate: 12}

	// Config file overrides the scene, flags override the config file.
	cfg, err := resolveGrid(fixedScene{}, grid, newFlags(t, "--fps", "40"), onceMargin)
	if err != nil {
		t.Fatalf("resolveGrid() error: %v", err)
	}

	expected := canvas.Config{CellWidth: 50, CellHeight: 15, Tileset: canvas.Braille, MaxFramerate: 40}
	if cfg != expected {
		t.Errorf("resolveGrid() = %+v, expected %+v", cfg, expected)
	}
}

func TestResolveGridRejectsInvalid(t *testing.T) {
	_, err := resolveGrid(fixedScene{}, config.GridConfig{}, newFlags(t, "--width", "0"), onceMargin)
	if err == nil || !strings.Contains(err.Error(), "fixed") {
		t.Errorf("resolveGrid() error = %v, expected an error naming the scene", err)
	}
}

func TestFormatTileset(t *testing.T) {
	out := formatTileset("ascii", canvas.PureASCII)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 5 || lines[0] != "ascii" {
		t.Fatalf("formatTileset() = %q", out)
	}
	if lines[1] != "  0000   0001 . 0010 , 0011 _" {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.HasSuffix(lines[4], "1111 #") {
		t.Errorf("last row = %q", lines[4])
	}
}
