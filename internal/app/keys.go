package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"minefield/internal/action"
)

// ActionForKey normalizes a key event into an action. Arrow keys, wasd and
// vi-style movement all work; unmapped keys yield None. Decoding multi-byte
// escape sequences into named keys is bubbletea's job, so by the time a
// KeyMsg arrives here it is already a discrete symbol.
func ActionForKey(msg tea.KeyMsg) action.Action {
	switch msg.String() {
	case "up", "w", "k":
		return action.Up
	case "down", "s", "j":
		return action.Down
	case "left", "a", "h":
		return action.Left
	case "right", "d", "l":
		return action.Right
	case " ", "space", "enter":
		return action.Reveal
	case "f":
		return action.Flag
	case "r":
		return action.Reset
	case "q", "esc", "ctrl+c":
		return action.Quit
	default:
		return action.None
	}
}
