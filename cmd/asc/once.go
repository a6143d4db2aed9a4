package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/engine"
)

var flagFrame int

var onceCmd = &cobra.Command{
	Use:   "once <scene>",
	Short: "Print a single frame of a scene",
	Long: `Draw one frame of the scene and print it to stdout as plain text,
without clearing the screen. Useful for piping and for checking output.

Examples:
  asc once circle
  asc once clock --frame 40 --tileset braille
  asc once shapes --width 60 --height 30 > shapes.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runOnce,
}

func init() {
	onceCmd.Flags().IntVar(&flagFrame, "frame", 0, "Frame number to draw")
}

func runOnce(cmd *cobra.Command, args []string) {
	scene, cfg := createScene(args[0], cmd.Flags(), onceMargin)

	err := engine.Once(cfg, func(g *canvas.Grid) {
		scene.Draw(g, flagFrame)
	}, engine.WithEmitter(engine.NewPlainEmitter(os.Stdout)), engine.WithLogger(logger))
	if err != nil {
		exitf("Error: %v\n", err)
	}
}
