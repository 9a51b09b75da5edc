package render

import (
	"image/color"

	"flux/internal/core"
)

// MinimapPalette colors each cell kind on the minimap, indexed by core.Cell.
// The last entry marks the player.
var MinimapPalette = []color.RGBA{
	core.CellFloor:       {R: 58, G: 96, B: 46, A: 255},
	core.CellWall:        {R: 150, G: 110, B: 64, A: 255},
	core.CellEdgeWall:    {R: 96, G: 70, B: 44, A: 255},
	core.CellPlayerStart: {R: 58, G: 96, B: 46, A: 255},
	minimapPlayer:        {R: 240, G: 220, B: 60, A: 255},
}

const minimapPlayer = 4

// FillMinimapRGBA writes one RGBA pixel per grid cell into buf, with the
// player's cell highlighted. buf must hold 4*W*H bytes.
func FillMinimapRGBA(buf []byte, g *core.Grid, player core.Position, palette []color.RGBA) {
	cells := g.Cells()
	if len(buf) < 4*len(cells) {
		return
	}
	fillPaletteRGBA(buf, cells, palette)
	if !g.InBounds(player.X, player.Y) || len(palette) <= minimapPlayer {
		return
	}
	base := g.Index(player.X, player.Y) * 4
	col := palette[minimapPlayer]
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []core.Cell, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
