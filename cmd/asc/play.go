package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asc/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene",
	Long: `Play the specified scene in the interactive player.

Controls:
  P/Space    - Pause
  N/Right    - Step one frame while paused
  T          - Switch tileset
  ?          - More help
  Q/Ctrl+C   - Quit

Examples:
  asc play clock
  asc play orbits --tileset ascii
  asc play shapes --fit --timing`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	scene, cfg := createScene(args[0], cmd.Flags(), playerMargin)

	if err := tui.Run(scene, cfg, logger); err != nil {
		exitf("Error running scene: %v\n", err)
	}
}
