// Package render turns engine snapshots into drawable output: a fixed-height
// text frame for the terminal build and palette-indexed RGBA pixels for the
// graphical build.
package render

import (
	"fmt"
	"strings"

	"minefield/internal/core"
)

// FrameLines is the number of lines a rendered frame occupies in addition to
// the board rows: header, top border, bottom border.
const FrameLines = 3

// Frame renders a snapshot as a text block of exactly Rows+FrameLines lines
// with no trailing newline. Callers doing in-place redraw can rely on that
// height to move the terminal cursor back up before redrawing.
func Frame(s core.Snapshot) string {
	var b strings.Builder
	border := strings.Repeat("-", s.Cols*3+2)

	fmt.Fprintf(&b, "%dx%d | mines: %d | open: %d/%d\n",
		s.Cols, s.Rows, s.MineCount, s.RevealedCount, s.Rows*s.Cols)
	b.WriteString(border)
	b.WriteByte('\n')

	for row := 0; row < s.Rows; row++ {
		b.WriteByte('|')
		for col := 0; col < s.Cols; col++ {
			left, right := byte(' '), byte(' ')
			if row == s.CursorRow && col == s.CursorCol {
				left, right = '[', ']'
			}
			b.WriteByte(left)
			b.WriteByte(glyph(s.At(row, col)))
			b.WriteByte(right)
		}
		b.WriteString("|\n")
	}

	b.WriteString(border)
	return b.String()
}

// glyph picks the single character for one cell: '#' concealed, 'F' flagged,
// '*' mine, blank or digit for a revealed empty cell.
func glyph(v core.CellView) byte {
	if !v.Revealed {
		if v.Flagged {
			return 'F'
		}
		return '#'
	}
	if v.Mine {
		return '*'
	}
	if v.Neighbors == 0 {
		return ' '
	}
	return '0' + byte(v.Neighbors)
}
