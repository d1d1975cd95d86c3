package app

import (
	"flag"
	"time"

	"minefield/internal/core"
)

// Config represents the command-line parameters for the game.
type Config struct {
	Mines   int
	Seed    int64
	Scale   int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Mines: core.DefaultMineCount, Scale: 48}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Mines, "mines", c.Mines, "mines dealt per round")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "mine layout seed, 0 derives one from the clock")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels (graphical build only)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// EffectiveSeed resolves the configured seed, substituting the clock when the
// seed was left at zero.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
