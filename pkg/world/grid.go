package world

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Grid is a square tile map stored as a flat slice.
// Index i maps to (i % width, i / width).
type Grid struct {
	width int
	tiles []Tile
}

// MaxWidth bounds the side length so width*width cannot overflow and the
// cells × river-samples scan stays tractable.
const MaxWidth = 8192

// NewGrid returns a width×width grid with every cell Empty.
func NewGrid(width int) (*Grid, error) {
	if err := CheckWidth(width); err != nil {
		return nil, err
	}
	return &Grid{width: width, tiles: make([]Tile, width*width)}, nil
}

// CheckWidth returns a ConfigError unless width is in [1, MaxWidth].
func CheckWidth(width int) error {
	if width <= 0 || width > MaxWidth {
		return &ConfigError{Field: "size", Reason: fmt.Sprintf("width %d outside [1,%d]", width, MaxWidth)}
	}
	return nil
}

// FromTiles wraps tiles as a grid. The length must be a non-zero perfect square.
// The grid takes ownership of the slice.
func FromTiles(tiles []Tile) (*Grid, error) {
	n := len(tiles)
	w := int(math.Sqrt(float64(n)))
	for w*w > n {
		w--
	}
	for (w+1)*(w+1) <= n {
		w++
	}
	if n == 0 || w*w != n {
		return nil, &ConfigError{Field: "grid", Reason: fmt.Sprintf("length %d is not a perfect square", n)}
	}
	if err := CheckWidth(w); err != nil {
		return nil, err
	}
	for i, t := range tiles {
		if !t.Valid() {
			return nil, &ConfigError{Field: "grid", Reason: fmt.Sprintf("cell %d holds %s", i, t)}
		}
	}
	return &Grid{width: w, tiles: tiles}, nil
}

// Width returns the side length.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows. Grids are square.
func (g *Grid) Height() int { return g.width }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.tiles) }

// Index converts (x, y) to a flat index. It does not bounds-check.
func (g *Grid) Index(x, y int) int { return x + y*g.width }

// Coords converts a flat index to (x, y).
func (g *Grid) Coords(i int) (x, y int) { return i % g.width, i / g.width }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.width
}

// At returns the tile at flat index i.
func (g *Grid) At(i int) Tile { return g.tiles[i] }

// Set overwrites the tile at flat index i.
func (g *Grid) Set(i int, t Tile) { g.tiles[i] = t }

// Get returns the tile at (x, y).
func (g *Grid) Get(x, y int) Tile { return g.tiles[g.Index(x, y)] }

// Put overwrites the tile at (x, y).
func (g *Grid) Put(x, y int, t Tile) { g.tiles[g.Index(x, y)] = t }

// Row returns the tiles of row y. The slice aliases the grid.
func (g *Grid) Row(y int) []Tile {
	return g.tiles[y*g.width : (y+1)*g.width]
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Histogram counts cells per tile.
func (g *Grid) Histogram() map[Tile]int {
	h := make(map[Tile]int, numTiles)
	for _, v := range g.tiles {
		h[v]++
	}
	return h
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{width: g.width, tiles: tiles}
}

// ParseText reads a map written one row per line with no separators.
// Glyphs are matched against syms, longest first, so multi-rune emoji parse correctly.
func ParseText(r io.Reader, syms SymbolSet) (*Grid, error) {
	type glyph struct {
		text string
		tile Tile
	}
	glyphs := make([]glyph, 0, numTiles)
	for i, s := range syms {
		if s != "" {
			glyphs = append(glyphs, glyph{text: s, tile: Tile(i)})
		}
	}
	sort.SliceStable(glyphs, func(i, j int) bool { return len(glyphs[i].text) > len(glyphs[j].text) })

	var tiles []Tile
	width := -1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		rest := sc.Text()
		n := 0
	scan:
		for rest != "" {
			for _, gl := range glyphs {
				if strings.HasPrefix(rest, gl.text) {
					tiles = append(tiles, gl.tile)
					rest = rest[len(gl.text):]
					n++
					continue scan
				}
			}
			return nil, fmt.Errorf("line %d: unknown glyph at %q", line, rest)
		}
		if width < 0 {
			width = n
		} else if n != width {
			return nil, fmt.Errorf("line %d: %d tiles, want %d", line, n, width)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return FromTiles(tiles)
}
