//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"minefield/internal/app"
	"minefield/internal/core"
	"minefield/internal/gui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	eng, err := core.New(cfg.Mines, cfg.EffectiveSeed())
	if err != nil {
		log.WithError(err).Fatal("bad configuration")
	}

	game := gui.New(eng, cfg.Mines, cfg.Scale)

	ebiten.SetWindowTitle("minefield")
	ebiten.SetWindowSize(core.Cols*cfg.Scale, core.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game loop failed")
	}
}
