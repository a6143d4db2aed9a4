package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/platform/tui"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start asc with a scene picker menu",
	Long: `Start asc in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a scene.
Quitting a scene returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Play scene
  Q            - Quit

Examples:
  asc menu
  asc menu --tileset braille --fit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()
	resolve := func(s registry.Scene) (canvas.Config, error) {
		return resolveGrid(s, appConfig.Grid, flags, playerMargin)
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(resolve)
		if err != nil {
			exitf("Error: %v\n", err)
		}
		if result.Quit {
			return
		}

		scene, cfg := createScene(result.SceneID, flags, playerMargin)
		if err := tui.Run(scene, cfg, logger); err != nil {
			exitf("Error running scene: %v\n", err)
		}
	}
}
