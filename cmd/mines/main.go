package main

import (
	"flag"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"minefield/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	m, err := app.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("bad configuration")
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
}
