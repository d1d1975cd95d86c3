//go:build ebiten

// Package gui adapts the minefield engine to ebiten for the optional
// graphical build.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"minefield/internal/action"
	"minefield/internal/core"
	"minefield/internal/render"
)

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	eng     *core.Engine
	disp    *action.Dispatcher
	painter *render.GridPainter
	scale   int
}

// New constructs a Game around an engine dealt elsewhere.
func New(eng *core.Engine, mineCount, scale int) *Game {
	return &Game{
		eng:     eng,
		disp:    action.NewDispatcher(eng, mineCount),
		painter: render.NewGridPainter(core.Cols, core.Rows),
		scale:   scale,
	}
}

// Update translates key presses into actions, one action per press.
func (g *Game) Update() error {
	if res := g.disp.Do(pressedAction()); res.Quit {
		return ebiten.Termination
	}
	return nil
}

func pressedAction() action.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return action.Quit
	case inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp):
		return action.Up
	case inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown):
		return action.Down
	case inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return action.Left
	case inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return action.Right
	case inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return action.Reveal
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		return action.Flag
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return action.Reset
	default:
		return action.None
	}
}

// Draw paints the board from a snapshot, never from engine internals.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := render.DisplayBytes(g.eng.Snapshot())
	g.painter.Blit(screen, cells, render.Palette(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.Cols * g.scale, core.Rows * g.scale
}
