package world

import "fmt"

// Tile is the terrain type held by one grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Stone
	Ore
	Tree
	Bush
	Rock
	River

	numTiles = int(River) + 1
)

var tileNames = [numTiles]string{
	Empty: "empty",
	Stone: "stone",
	Ore:   "ore",
	Tree:  "tree",
	Bush:  "bush",
	Rock:  "rock",
	River: "river",
}

// Tiles lists every tile value in declaration order.
func Tiles() []Tile {
	out := make([]Tile, numTiles)
	for i := range out {
		out[i] = Tile(i)
	}
	return out
}

// Valid reports whether t is one of the declared tiles.
func (t Tile) Valid() bool { return int(t) < numTiles }

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
	return tileNames[t]
}

// SymbolSet maps each tile to the glyph written by the exporters.
type SymbolSet [numTiles]string

// EmojiSymbols are the glyphs the generator has always written to map.txt.
var EmojiSymbols = SymbolSet{
	Empty: "◾",
	Stone: "🌫️",
	Ore:   "🌑",
	Tree:  "🟤",
	Bush:  "🌿",
	Rock:  "🪨",
	River: "🌊",
}

// ASCIISymbols render one byte per tile, handy for terminals and diffs.
var ASCIISymbols = SymbolSet{
	Empty: ".",
	Stone: "#",
	Ore:   "*",
	Tree:  "T",
	Bush:  "b",
	Rock:  "o",
	River: "~",
}

// SymbolSetByName resolves a symbol set from its config name.
func SymbolSetByName(name string) (SymbolSet, bool) {
	switch name {
	case "emoji":
		return EmojiSymbols, true
	case "ascii":
		return ASCIISymbols, true
	default:
		return SymbolSet{}, false
	}
}

// Symbol returns the glyph for t.
func (s *SymbolSet) Symbol(t Tile) string {
	if !t.Valid() {
		return "?"
	}
	return s[t]
}
