package core

// Board dimensions and the default session mine count. The board size is a
// constant of the build; only the mine count is configurable per round.
const (
	Cols = 10
	Rows = 10

	// CellCount is the total number of cells on the board.
	CellCount = Rows * Cols

	// DefaultMineCount yields a 25% mine density on the 10x10 board.
	DefaultMineCount = 25
)

// CellKind identifies what a cell holds once revealed.
type CellKind uint8

const (
	// KindEmpty marks a cell that is safe to reveal.
	KindEmpty CellKind = iota
	// KindMine marks a cell that ends the round when revealed.
	KindMine
)

// Cell stores the state of a single board position. Kind is fixed at round
// start; Revealed flips to true at most once per round; Flagged is a
// player-toggled marker independent of the actual kind.
type Cell struct {
	Kind     CellKind
	Revealed bool
	Flagged  bool
}

// index returns the row-major slice index for (row, col).
func index(row, col int) int { return row*Cols + col }

// inBounds reports whether (row, col) addresses a cell on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}
