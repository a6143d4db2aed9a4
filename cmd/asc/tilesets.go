package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asc/internal/canvas"
)

var tilesetsCmd = &cobra.Command{
	Use:   "tilesets",
	Short: "Show the glyph tables",
	Long: `Prints every built-in tileset. Each entry shows the quadrant mask
(top-left, top-right, bottom-left, bottom-right) and its glyph.`,
	Args: cobra.NoArgs,
	Run:  runTilesets,
}

func runTilesets(cmd *cobra.Command, _ []string) {
	for _, name := range canvas.TilesetNames() {
		ts, err := canvas.TilesetByName(name)
		if err != nil {
			continue
		}
		fmt.Fprint(cmd.OutOrStdout(), formatTileset(name, ts))
	}
}

// formatTileset lays out the 16 glyphs four to a line.
func formatTileset(name string, ts canvas.Tileset) string {
	s := name + "\n"
	for mask := 0; mask < 16; mask++ {
		if mask%4 == 0 {
			s += " "
		}
		s += fmt.Sprintf(" %04b %c", mask, ts.Glyph(uint8(mask)))
		if mask%4 == 3 {
			s += "\n"
		}
	}
	return s + "\n"
}
