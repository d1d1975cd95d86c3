package core

// CellView is the renderer-visible projection of one cell. Kind information
// leaks only once the cell is revealed: Mine and Neighbors stay zero for
// concealed cells no matter what the cell actually holds.
type CellView struct {
	Revealed  bool
	Flagged   bool
	Mine      bool // valid only when Revealed
	Neighbors int  // valid only when Revealed and !Mine
}

// Snapshot is a read-only copy of everything a renderer may see.
type Snapshot struct {
	Rows, Cols    int
	MineCount     int
	RevealedCount int
	CursorRow     int
	CursorCol     int
	Cells         []CellView // row-major, Rows*Cols entries
}

// At returns the view of the cell at (row, col).
func (s Snapshot) At(row, col int) CellView {
	return s.Cells[row*s.Cols+col]
}

// Snapshot projects the current round state into a renderable view,
// withholding the kind of every concealed cell.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Rows:          Rows,
		Cols:          Cols,
		MineCount:     e.mineCount,
		RevealedCount: e.revealed,
		CursorRow:     e.curRow,
		CursorCol:     e.curCol,
		Cells:         make([]CellView, CellCount),
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			cell := e.cells[index(row, col)]
			view := CellView{Revealed: cell.Revealed, Flagged: cell.Flagged}
			if cell.Revealed {
				if cell.Kind == KindMine {
					view.Mine = true
				} else {
					view.Neighbors = e.NeighborMines(row, col)
				}
			}
			s.Cells[index(row, col)] = view
		}
	}
	return s
}
