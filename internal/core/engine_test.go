package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMines(e *Engine) int {
	n := 0
	for i := range e.cells {
		if e.cells[i].Kind == KindMine {
			n++
		}
	}
	return n
}

func TestNewPlacesExactMineCount(t *testing.T) {
	for _, mines := range []int{0, 1, DefaultMineCount, CellCount - 1} {
		e, err := New(mines, 42)
		require.NoError(t, err)
		assert.Equal(t, mines, countMines(e), "mine count %d", mines)
		assert.Equal(t, mines, e.MineCount())
		assert.Equal(t, 0, e.RevealedCount())
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	a, err := New(DefaultMineCount, 99)
	require.NoError(t, err)
	b, err := New(DefaultMineCount, 99)
	require.NoError(t, err)
	assert.Equal(t, a.cells, b.cells)
}

func TestNewRejectsInvalidMineCount(t *testing.T) {
	for _, mines := range []int{-1, CellCount, CellCount + 7} {
		e, err := New(mines, 1)
		require.ErrorIs(t, err, ErrInvalidConfig, "mine count %d", mines)
		assert.Nil(t, e)
	}
}

func TestFailedResetLeavesRoundUntouched(t *testing.T) {
	e, err := New(DefaultMineCount, 7)
	require.NoError(t, err)
	e.MoveCursor(DirRight)
	e.ToggleFlagAtCursor()
	require.Equal(t, Opened, revealEmptyAtCursor(t, e))

	before := e.cells
	require.ErrorIs(t, e.Reset(CellCount), ErrInvalidConfig)

	assert.Equal(t, before, e.cells)
	assert.Equal(t, 1, e.RevealedCount())
	row, col := e.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, col)
	assert.Equal(t, DefaultMineCount, e.MineCount())
}

// revealEmptyAtCursor clears any mine under the cursor before revealing so
// tests that only care about the Opened path stay deterministic.
func revealEmptyAtCursor(t *testing.T, e *Engine) RevealOutcome {
	t.Helper()
	e.cells[index(e.curRow, e.curCol)].Kind = KindEmpty
	return e.RevealAtCursor()
}

func TestMoveCursorClampsAtEdges(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)

	// Hammering the top-left corner must not move the cursor.
	for i := 0; i < 5; i++ {
		e.MoveCursor(DirUp)
		e.MoveCursor(DirLeft)
	}
	row, col := e.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	// Far more steps than the board is wide pins the opposite corner.
	for i := 0; i < 3*Cols; i++ {
		e.MoveCursor(DirRight)
		e.MoveCursor(DirDown)
	}
	row, col = e.Cursor()
	assert.Equal(t, Rows-1, row)
	assert.Equal(t, Cols-1, col)

	e.MoveCursor(DirUp)
	e.MoveCursor(DirLeft)
	row, col = e.Cursor()
	assert.Equal(t, Rows-2, row)
	assert.Equal(t, Cols-2, col)
}

func TestRevealEmptyCell(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)

	assert.Equal(t, Opened, e.RevealAtCursor())
	assert.Equal(t, 1, e.RevealedCount())
	for i := 1; i < CellCount; i++ {
		assert.False(t, e.cells[i].Revealed, "cell %d leaked a reveal", i)
	}

	// Revealing the same cell again changes nothing.
	assert.Equal(t, AlreadyOpen, e.RevealAtCursor())
	assert.Equal(t, 1, e.RevealedCount())
}

func TestRevealMineOpensWholeBoard(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)
	e.cells[index(0, 0)].Kind = KindMine
	e.cells[index(5, 5)].Flagged = true

	assert.Equal(t, Detonated, e.RevealAtCursor())
	assert.Equal(t, CellCount, e.RevealedCount())
	for i := range e.cells {
		assert.True(t, e.cells[i].Revealed, "cell %d still concealed after detonation", i)
	}
	// Detonation must not disturb flags.
	assert.True(t, e.cells[index(5, 5)].Flagged)
}

func TestRevealOpensFlaggedCell(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)
	e.ToggleFlagAtCursor()

	assert.Equal(t, Opened, e.RevealAtCursor())
	assert.True(t, e.cells[index(0, 0)].Flagged, "reveal must not clear the flag")
}

func TestToggleFlag(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)

	e.ToggleFlagAtCursor()
	assert.True(t, e.cells[index(0, 0)].Flagged)
	assert.False(t, e.cells[index(0, 0)].Revealed, "flagging must not reveal")
	assert.Equal(t, 0, e.RevealedCount())

	e.ToggleFlagAtCursor()
	assert.False(t, e.cells[index(0, 0)].Flagged)

	// Flagging a revealed cell is inert but legal.
	require.Equal(t, Opened, e.RevealAtCursor())
	e.ToggleFlagAtCursor()
	assert.True(t, e.cells[index(0, 0)].Flagged)
}

func TestNeighborMinesClipsAtEdges(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)
	for i := range e.cells {
		e.cells[i].Kind = KindMine
	}

	assert.Equal(t, 3, e.NeighborMines(0, 0), "corner sees 3 neighbors")
	assert.Equal(t, 3, e.NeighborMines(Rows-1, Cols-1), "corner sees 3 neighbors")
	assert.Equal(t, 5, e.NeighborMines(0, 5), "edge sees 5 neighbors")
	assert.Equal(t, 5, e.NeighborMines(4, 0), "edge sees 5 neighbors")
	assert.Equal(t, 8, e.NeighborMines(4, 4), "interior sees 8 neighbors")
}

func TestNeighborMinesKnownLayout(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)
	e.cells[index(1, 1)].Kind = KindMine
	e.cells[index(2, 2)].Kind = KindMine

	assert.Equal(t, 1, e.NeighborMines(0, 0))
	assert.Equal(t, 2, e.NeighborMines(1, 2))
	assert.Equal(t, 2, e.NeighborMines(2, 1))
	assert.Equal(t, 0, e.NeighborMines(4, 4))
	// A mine's own cell never counts itself.
	assert.Equal(t, 1, e.NeighborMines(1, 1))
}

func TestNeighborMinesPanicsOutOfRange(t *testing.T) {
	e, err := New(0, 1)
	require.NoError(t, err)
	assert.Panics(t, func() { e.NeighborMines(-1, 0) })
	assert.Panics(t, func() { e.NeighborMines(0, Cols) })
	assert.Panics(t, func() { e.NeighborMines(Rows, 0) })
}

func TestResetDiscardsRoundState(t *testing.T) {
	e, err := New(DefaultMineCount, 3)
	require.NoError(t, err)
	e.MoveCursor(DirDown)
	e.MoveCursor(DirRight)
	e.ToggleFlagAtCursor()
	revealEmptyAtCursor(t, e)

	require.NoError(t, e.Reset(10))

	assert.Equal(t, 10, e.MineCount())
	assert.Equal(t, 10, countMines(e))
	assert.Equal(t, 0, e.RevealedCount())
	row, col := e.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	for i := range e.cells {
		assert.False(t, e.cells[i].Revealed, "cell %d survived reset revealed", i)
		assert.False(t, e.cells[i].Flagged, "cell %d survived reset flagged", i)
	}
}

func TestFullRound(t *testing.T) {
	e, err := New(DefaultMineCount, 1234)
	require.NoError(t, err)

	outcome := e.RevealAtCursor()
	if e.cells[index(0, 0)].Kind == KindEmpty {
		assert.Equal(t, Opened, outcome)
		assert.Equal(t, 1, e.RevealedCount())
	} else {
		assert.Equal(t, Detonated, outcome)
		assert.Equal(t, CellCount, e.RevealedCount())
	}

	// A fresh round with a mine planted under the cursor always detonates.
	require.NoError(t, e.Reset(DefaultMineCount))
	e.cells[index(0, 0)].Kind = KindMine
	assert.Equal(t, Detonated, e.RevealAtCursor())
	assert.Equal(t, CellCount, e.RevealedCount())
}
