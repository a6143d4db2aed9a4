// asc draws animated line art in the terminal. Shapes are rasterized onto a
// grid of cells where every cell shows which of its four quadrants an
// outline passes through.
//
// Usage:
//
//	asc list                 - List available scenes
//	asc play <scene>         - Play a scene in the interactive player
//	asc menu                 - Pick scenes from a menu
//	asc run <scene>          - Run the plain frame loop on stdout
//	asc once <scene>         - Print a single frame
//	asc tilesets             - Show the glyph tables
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.asc/config.yaml, ./configs/asc.yaml)
//	--width, --height  - Grid size in cells
//	--tileset <name>   - ascii or braille
//	--fps <rate>       - Maximum framerate
//	--timing           - Print the average paint time under each frame
//	--fit              - Size the grid to the terminal
//	--log-level, --log-file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asc/internal/config"
	"github.com/vovakirdan/tui-asc/internal/logging"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-asc/internal/scenes/circle"
	_ "github.com/vovakirdan/tui-asc/internal/scenes/clock"
	_ "github.com/vovakirdan/tui-asc/internal/scenes/orbits"
	_ "github.com/vovakirdan/tui-asc/internal/scenes/shapes"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagTileset  string
	flagFPS      int
	flagTiming   bool
	flagFit      bool
	flagLogLevel string
	flagLogFile  string
)

var (
	appConfig = config.DefaultConfig()
	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asc",
	Short: "asc - line art rendered with quadrant glyphs",
	Long: `asc rasterizes lines, circles and ellipses onto a character grid.
Every cell is split into four quadrants and shows the glyph for the
quadrants an outline passes through.

Available commands:
  list      - Show all available scenes
  play      - Play a scene in the interactive player
  menu      - Interactive scene picker
  run       - Run the plain frame loop on stdout
  once      - Print a single frame
  tilesets  - Show the glyph tables

Examples:
  asc list
  asc play clock
  asc play orbits --tileset ascii --fps 30
  asc run shapes --backend tcell
  asc once circle --width 60 --height 30`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Grid width in cells (0 = scene default)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Grid height in cells (0 = scene default)")
	rootCmd.PersistentFlags().StringVar(&flagTileset, "tileset", "", "Glyph table: ascii, braille")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Maximum framerate (0 = scene default)")
	rootCmd.PersistentFlags().BoolVar(&flagTiming, "timing", false, "Print the average paint time")
	rootCmd.PersistentFlags().BoolVar(&flagFit, "fit", false, "Size the grid to the terminal")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a rotated file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(onceCmd)
	rootCmd.AddCommand(tilesetsCmd)
}

// setup loads the configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	l, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}

	appConfig, logger, logCloser = cfg, l, closer
	logger.Debug("configuration loaded", "path", flagConfig, "grid", cfg.Grid, "log_level", cfg.Log.Level)
	return nil
}

func closeLog() {
	if logCloser != nil {
		//nolint:errcheck // Nothing useful to do on exit
		logCloser.Close()
		logCloser = nil
	}
}

// exitf reports an error and exits. Deferred calls do not run, so the log
// is closed here.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	closeLog()
	os.Exit(1)
}
