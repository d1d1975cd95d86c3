package render

import (
	"image/color"

	"minefield/internal/core"
)

// Display byte layout for the graphical build: the low nibble classifies the
// cell, cursorBit marks the cell under the cursor.
const (
	displayConcealed = 0
	displayFlagged   = 1
	displayMine      = 2
	displayEmptyBase = 3 // displayEmptyBase+n for n neighboring mines, n in [0,8]
	cursorBit        = 0x10
	paletteSize      = 0x20
)

// DisplayByte classifies one cell view into a palette index.
func DisplayByte(v core.CellView, cursor bool) uint8 {
	var b uint8
	switch {
	case !v.Revealed && v.Flagged:
		b = displayFlagged
	case !v.Revealed:
		b = displayConcealed
	case v.Mine:
		b = displayMine
	default:
		b = displayEmptyBase + uint8(v.Neighbors)
	}
	if cursor {
		b |= cursorBit
	}
	return b
}

// DisplayBytes classifies a whole snapshot in row-major order.
func DisplayBytes(s core.Snapshot) []uint8 {
	cells := make([]uint8, s.Rows*s.Cols)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			cursor := row == s.CursorRow && col == s.CursorCol
			cells[row*s.Cols+col] = DisplayByte(s.At(row, col), cursor)
		}
	}
	return cells
}

var boardPalette = buildBoardPalette()

// Palette exposes the color palette matching DisplayByte indices.
func Palette() []color.RGBA { return boardPalette }

func buildBoardPalette() []color.RGBA {
	palette := make([]color.RGBA, paletteSize)
	for i := range palette {
		c := paletteColorFor(uint8(i) &^ cursorBit)
		if uint8(i)&cursorBit != 0 {
			c = brighten(c)
		}
		palette[i] = c
	}
	return palette
}

func paletteColorFor(b uint8) color.RGBA {
	switch {
	case b == displayConcealed:
		return color.RGBA{R: 70, G: 70, B: 80, A: 255}
	case b == displayFlagged:
		return color.RGBA{R: 220, G: 180, B: 40, A: 255}
	case b == displayMine:
		return color.RGBA{R: 200, G: 40, B: 40, A: 255}
	case b >= displayEmptyBase && b <= displayEmptyBase+8:
		// Revealed empties darken as the neighbor count rises.
		n := b - displayEmptyBase
		v := 210 - n*18
		return color.RGBA{R: v, G: v, B: v, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

func brighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		if v > 205 {
			return 255
		}
		return v + 50
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}

// fillPaletteRGBA converts display bytes into RGBA pixels using a palette.
// Out-of-range values clamp to the last palette entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
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
