package app

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minefield/internal/core"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestModel(t *testing.T, mines int) Model {
	t.Helper()
	cfg := NewConfig()
	cfg.Mines = mines
	cfg.Seed = 1
	m, err := New(cfg, quietLogger())
	require.NoError(t, err)
	return m
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Mines = core.CellCount
	cfg.Seed = 1
	_, err := New(cfg, quietLogger())
	require.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestQuitKeyEndsLoop(t *testing.T) {
	m := newTestModel(t, 0)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRevealKeyOpensCursorCell(t *testing.T) {
	m := newTestModel(t, 0)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Nil(t, cmd)
	assert.Contains(t, next.View(), "open: 1/100")
}

func TestUnknownKeyChangesNothing(t *testing.T) {
	m := newTestModel(t, 0)
	before := m.View()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.Equal(t, before, next.View())
}

func TestResetKeyDealsFreshRound(t *testing.T) {
	m := newTestModel(t, 0)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Contains(t, next.View(), "open: 1/100")

	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Nil(t, cmd)
	assert.Contains(t, next.View(), "open: 0/100")
}

func TestViewShowsHelp(t *testing.T) {
	m := newTestModel(t, 0)
	assert.Contains(t, m.View(), "q quit")
}
