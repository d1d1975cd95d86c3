// Package action maps normalized input symbols onto engine operations. The
// dispatcher is a pure lookup: it holds no grid state of its own.
package action

// Action is one normalized input symbol. Front-ends translate raw key events
// into Actions; the engine never sees keys.
type Action uint8

const (
	// None is produced for unrecognized input and dispatches to nothing.
	None Action = iota
	Left
	Right
	Up
	Down
	Reveal
	Flag
	Reset
	Quit
)

// String returns the string representation of an action.
func (a Action) String() string {
	switch a {
	case None:
		return "None"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Reveal:
		return "Reveal"
	case Flag:
		return "Flag"
	case Reset:
		return "Reset"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}
