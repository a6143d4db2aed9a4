package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asc/internal/canvas"
	"github.com/vovakirdan/tui-asc/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows a list of all scenes registered in asc with their default grids.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenes := registry.List()

	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Defaults")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "--------")

	// Print scenes
	for _, s := range scenes {
		defaults := "-"
		if scene, err := registry.Create(s.ID); err == nil {
			cfg := scene.Defaults()
			defaults = fmt.Sprintf("%dx%d %s @%dfps",
				cfg.CellWidth, cfg.CellHeight, canvas.TilesetName(cfg.Tileset), cfg.Framerate())
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, s.ID, maxTitleLen, s.Title, defaults)
	}

	fmt.Println()
	fmt.Println("Run 'asc play <id>' to play a scene.")
}
