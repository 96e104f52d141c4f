package storage

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/OCharnyshevich/tilemap/pkg/world"
)

// WriteText writes one line per grid row, glyphs concatenated.
func WriteText(w io.Writer, g *world.Grid, syms world.SymbolSet) error {
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		for _, t := range g.Row(y) {
			sb.WriteString(syms.Symbol(t))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes one record per grid row. Empty cells become empty fields.
func WriteCSV(w io.Writer, g *world.Grid, syms world.SymbolSet) error {
	cw := csv.NewWriter(w)
	record := make([]string, g.Width())
	for y := 0; y < g.Height(); y++ {
		for x, t := range g.Row(y) {
			if t == world.Empty {
				record[x] = ""
				continue
			}
			record[x] = syms.Symbol(t)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// previewScale is the block side per tile, shrunk toward one pixel when the
// image would exceed maxPreviewSide.
const (
	previewScale   = 4
	maxPreviewSide = 4096
)

var previewPalette = map[world.Tile]color.RGBA{
	world.Empty: {R: 0x9c, G: 0xc4, B: 0x6a, A: 0xff},
	world.Stone: {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	world.Ore:   {R: 0x2b, G: 0x2b, B: 0x33, A: 0xff},
	world.Tree:  {R: 0x2f, G: 0x5d, B: 0x1e, A: 0xff},
	world.Bush:  {R: 0x5c, G: 0x9e, B: 0x3a, A: 0xff},
	world.Rock:  {R: 0xa8, G: 0x9f, B: 0x91, A: 0xff},
	world.River: {R: 0x2e, G: 0x6f, B: 0xd1, A: 0xff},
}

func previewScaleFor(width int) int {
	scale := previewScale
	for scale > 1 && width*scale > maxPreviewSide {
		scale--
	}
	return scale
}

// WritePreview encodes g as a PNG with a square block of pixels per tile.
func WritePreview(w io.Writer, g *world.Grid) error {
	scale := previewScaleFor(g.Width())
	side := g.Width() * scale
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for i := 0; i < g.Len(); i++ {
		c, ok := previewPalette[g.At(i)]
		if !ok {
			return fmt.Errorf("no preview colour for %s", g.At(i))
		}
		x, y := g.Coords(i)
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				img.SetRGBA(x*scale+dx, y*scale+dy, c)
			}
		}
	}
	return png.Encode(w, img)
}
