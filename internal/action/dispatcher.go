package action

import "minefield/internal/core"

// Engine is the slice of the game engine the dispatcher drives.
type Engine interface {
	MoveCursor(core.Dir)
	RevealAtCursor() core.RevealOutcome
	ToggleFlagAtCursor()
	Reset(mineCount int) error
}

// Result reports what a dispatched action did.
type Result struct {
	// Quit is set when the action asks the run loop to terminate.
	Quit bool
	// Revealed is set when the action was Reveal; Outcome is valid then.
	Revealed bool
	Outcome  core.RevealOutcome
	// Err is non-nil only when a reset was refused.
	Err error
}

// Dispatcher routes one action to one engine call. It remembers the mine
// count the session started with so Reset deals the same density, but it
// never touches grid state directly.
type Dispatcher struct {
	eng   Engine
	mines int
}

// NewDispatcher binds a dispatcher to an engine and the session mine count.
func NewDispatcher(eng Engine, mineCount int) *Dispatcher {
	return &Dispatcher{eng: eng, mines: mineCount}
}

// Do applies a single action. Unrecognized actions are ignored rather than
// reported, matching the "unknown keys do nothing" contract.
func (d *Dispatcher) Do(a Action) Result {
	switch a {
	case Left:
		d.eng.MoveCursor(core.DirLeft)
	case Right:
		d.eng.MoveCursor(core.DirRight)
	case Up:
		d.eng.MoveCursor(core.DirUp)
	case Down:
		d.eng.MoveCursor(core.DirDown)
	case Reveal:
		return Result{Revealed: true, Outcome: d.eng.RevealAtCursor()}
	case Flag:
		d.eng.ToggleFlagAtCursor()
	case Reset:
		return Result{Err: d.eng.Reset(d.mines)}
	case Quit:
		return Result{Quit: true}
	}
	return Result{}
}
