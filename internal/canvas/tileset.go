package canvas

import (
	"fmt"
	"sort"
	"strings"
)

// Tileset maps a 4-bit quadrant mask to the glyph printed for a cell.
// Bit 8 is the top-left quadrant, 4 top-right, 2 bottom-left and 1
// bottom-right, so index 0b1001 is a cell crossed from its top-left to its
// bottom-right corner.
type Tileset [16]rune

// PureASCII uses printable punctuation only.
var PureASCII = Tileset{
	' ',  // 0000
	'.',  // 0001
	',',  // 0010
	'_',  // 0011
	'\'', // 0100
	']',  // 0101
	'/',  // 0110
	'd',  // 0111
	'`',  // 1000
	'\\', // 1001
	'[',  // 1010
	'b',  // 1011
	'"',  // 1100
	'¶',  // 1101
	'P',  // 1110
	'#',  // 1111
}

// Braille uses block Braille patterns for a closer fit to the outlines.
var Braille = Tileset{
	'\u2800', // 0000
	'\u28a0', // 0001
	'\u2844', // 0010
	'\u28e4', // 0011
	'\u2818', // 0100
	'\u28b8', // 0101
	'\u285c', // 0110
	'\u28fc', // 0111
	'\u2803', // 1000
	'\u28a3', // 1001
	'\u2847', // 1010
	'\u28e7', // 1011
	'\u281b', // 1100
	'\u28bb', // 1101
	'\u285f', // 1110
	'\u28ff', // 1111
}

var tilesets = map[string]Tileset{
	"ascii":   PureASCII,
	"braille": Braille,
}

// Glyph returns the character for a quadrant mask. Only the low four bits
// are used.
func (t Tileset) Glyph(mask uint8) rune {
	return t[mask&0x0f]
}

// String returns all 16 glyphs in index order.
func (t Tileset) String() string {
	return string(t[:])
}

// TilesetByName looks up one of the built-in tilesets.
func TilesetByName(name string) (Tileset, error) {
	t, ok := tilesets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Tileset{}, fmt.Errorf("canvas: unknown tileset %q (available: %s)",
			name, strings.Join(TilesetNames(), ", "))
	}
	return t, nil
}

// TilesetNames returns the names accepted by TilesetByName, sorted.
func TilesetNames() []string {
	names := make([]string, 0, len(tilesets))
	for name := range tilesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTileset returns the built-in tileset following t in name order,
// wrapping around. Unknown tilesets cycle back to the first one.
func NextTileset(t Tileset) Tileset {
	names := TilesetNames()
	for i, name := range names {
		if tilesets[name] == t {
			return tilesets[names[(i+1)%len(names)]]
		}
	}
	return tilesets[names[0]]
}

// TilesetName returns the built-in name of t, or "custom".
func TilesetName(t Tileset) string {
	for name, ts := range tilesets {
		if ts == t {
			return name
		}
	}
	return "custom"
}
