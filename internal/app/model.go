// Package app is the terminal front-end: it owns the bubbletea run loop,
// normalizes key events into actions, and paints frames. Raw-mode setup and
// restore on every exit path is bubbletea's responsibility.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"minefield/internal/action"
	"minefield/internal/core"
	"minefield/internal/render"
)

var (
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const helpText = "wasd/arrows move   space reveal   f flag   r reset   q quit"

// Model drives one game session as a tea.Model.
type Model struct {
	eng  *core.Engine
	disp *action.Dispatcher
	log  *logrus.Logger
}

// New builds the session model: one engine dealt from the config and a
// dispatcher pinned to the session mine count.
func New(cfg *Config, log *logrus.Logger) (Model, error) {
	seed := cfg.EffectiveSeed()
	eng, err := core.New(cfg.Mines, seed)
	if err != nil {
		return Model{}, err
	}
	log.WithFields(logrus.Fields{"mines": cfg.Mines, "seed": seed}).Debug("round dealt")
	return Model{
		eng:  eng,
		disp: action.NewDispatcher(eng, cfg.Mines),
		log:  log,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update routes key events through the dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	a := ActionForKey(key)
	res := m.disp.Do(a)
	switch {
	case res.Quit:
		return m, tea.Quit
	case res.Err != nil:
		m.log.WithError(res.Err).Warn("reset refused")
	case res.Revealed && res.Outcome == core.Detonated:
		m.log.Debug("mine detonated, board exposed")
	case a == action.Reset:
		m.log.Debug("round reset")
	}
	return m, nil
}

// View renders the current frame plus a key help line.
func (m Model) View() string {
	frame := frameStyle.Render(render.Frame(m.eng.Snapshot()))
	return frame + "\n" + helpStyle.Render(helpText) + "\n"
}
