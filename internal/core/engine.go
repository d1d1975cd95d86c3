// Package core implements the minefield game-state engine. It owns the board,
// the mine layout, the cursor, and the reveal/flag counters, and it knows
// nothing about terminals or key bindings.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a mine count outside [0, CellCount) at engine
// construction or reset. The failing call leaves prior state untouched.
var ErrInvalidConfig = errors.New("invalid config")

// RevealOutcome reports what revealing the cell under the cursor did.
type RevealOutcome uint8

const (
	// AlreadyOpen means the cursor cell was revealed before; nothing changed.
	AlreadyOpen RevealOutcome = iota
	// Opened means an empty cell was revealed and the round continues.
	Opened
	// Detonated means a mine was revealed and the whole board is now open.
	Detonated
)

// String returns the string representation of a reveal outcome.
func (o RevealOutcome) String() string {
	switch o {
	case AlreadyOpen:
		return "AlreadyOpen"
	case Opened:
		return "Opened"
	case Detonated:
		return "Detonated"
	default:
		return "Unknown"
	}
}

// Engine holds one round of minefield state. It is the sole owner of its
// board; callers observe it only through Snapshot. Not safe for concurrent
// use, which the single-threaded input loop never requires.
type Engine struct {
	cells     [CellCount]Cell
	curRow    int
	curCol    int
	mineCount int
	revealed  int
	rng       *RNG
}

// New constructs an engine and deals the first round. mineCount must be in
// [0, CellCount); seed determines the mine layout.
func New(mineCount int, seed int64) (*Engine, error) {
	e := &Engine{rng: NewRNG(seed)}
	if err := e.Reset(mineCount); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset discards all round state and deals a fresh board with the given mine
// count. An out-of-range count fails with ErrInvalidConfig and leaves the
// round in progress untouched.
func (e *Engine) Reset(mineCount int) error {
	if mineCount < 0 || mineCount >= CellCount {
		return fmt.Errorf("%w: mine count %d outside [0, %d)", ErrInvalidConfig, mineCount, CellCount)
	}
	e.cells = [CellCount]Cell{}
	e.curRow, e.curCol = 0, 0
	e.mineCount = mineCount
	e.revealed = 0
	e.placeMines()
	return nil
}

// placeMines deals mineCount mines by rejection sampling: draw a cell
// uniformly, retry if it already holds a mine. Fine at the target density;
// it would crawl as mineCount approaches CellCount, which Reset forbids.
func (e *Engine) placeMines() {
	placed := 0
	for placed < e.mineCount {
		row := e.rng.IntN(Rows)
		col := e.rng.IntN(Cols)
		if e.cells[index(row, col)].Kind != KindMine {
			e.cells[index(row, col)].Kind = KindMine
			placed++
		}
	}
}

// MoveCursor shifts the cursor one step in the given direction, clamped to
// the board. Moving against an edge is a no-op.
func (e *Engine) MoveCursor(d Dir) {
	dRow, dCol := d.Delta()
	row, col := e.curRow+dRow, e.curCol+dCol
	if inBounds(row, col) {
		e.curRow, e.curCol = row, col
	}
}

// RevealAtCursor opens the cell under the cursor. Opening a mine opens every
// remaining concealed cell as well; the engine keeps accepting actions
// afterwards and callers decide when to reset. Flags are never touched.
func (e *Engine) RevealAtCursor() RevealOutcome {
	cell := &e.cells[index(e.curRow, e.curCol)]
	if cell.Revealed {
		return AlreadyOpen
	}
	cell.Revealed = true
	e.revealed++

	if cell.Kind != KindMine {
		return Opened
	}
	for i := range e.cells {
		if !e.cells[i].Revealed {
			e.cells[i].Revealed = true
			e.revealed++
		}
	}
	return Detonated
}

// ToggleFlagAtCursor flips the flag marker on the cell under the cursor.
// Flagging a revealed cell is inert but legal, and there is no cap on the
// number of flags placed.
func (e *Engine) ToggleFlagAtCursor() {
	cell := &e.cells[index(e.curRow, e.curCol)]
	cell.Flagged = !cell.Flagged
}

// NeighborMines counts the mines among the up-to-8 cells adjacent to
// (row, col), clipped at board edges. Calling it with out-of-range
// coordinates is a contract violation and panics.
func (e *Engine) NeighborMines(row, col int) int {
	if !inBounds(row, col) {
		panic(fmt.Sprintf("core: neighbor query out of range (%d, %d)", row, col))
	}
	count := 0
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			r, c := row+dRow, col+dCol
			if inBounds(r, c) && e.cells[index(r, c)].Kind == KindMine {
				count++
			}
		}
	}
	return count
}

// MineCount returns the number of mines dealt this round.
func (e *Engine) MineCount() int { return e.mineCount }

// RevealedCount returns the number of cells opened so far this round.
func (e *Engine) RevealedCount() int { return e.revealed }

// Cursor returns the current cursor position.
func (e *Engine) Cursor() (row, col int) { return e.curRow, e.curCol }
