// Package gameplay turns player intents into changes to the game state.
package gameplay

import (
	"time"

	"github.com/sirupsen/logrus"

	"tentsandtrees/pkg/engine/logging"
	"tentsandtrees/pkg/engine/random"
	"tentsandtrees/pkg/game/generator"
	"tentsandtrees/pkg/game/i18n"
	"tentsandtrees/pkg/game/renderer"
	"tentsandtrees/pkg/game/state"
)

// Config holds the settings fixed for the whole process
type Config struct {
	// Size is the board side length
	Size int

	// Seed, when non-zero, makes every game (including resets) use the same board
	Seed int64

	// DumpDir is where board dumps and screenshots are written
	DumpDir string
}

// DefaultConfig returns the settings used when no flags are given
func DefaultConfig() Config {
	return Config{
		Size:    generator.DefaultSize,
		DumpDir: ".",
	}
}

// active is the configuration of the current process, set by BuildGame
var active = DefaultConfig()

// now is the clock used to timestamp wins
var now = time.Now

// withDefaults fills unset fields from DefaultConfig
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Size <= 0 {
		c.Size = def.Size
	}
	if c.DumpDir == "" {
		c.DumpDir = def.DumpDir
	}
	return c
}

// seed returns the configured seed, or a fresh one if none is fixed
func (c Config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return random.NewSeed()
}

// newGame generates a puzzle and starts play on it
func newGame(cfg Config) *state.Game {
	p := generator.DefaultGenerator.Generate(cfg.Size, cfg.seed())

	logging.Log.WithFields(logrus.Fields{
		"generator": generator.DefaultGenerator.Name(),
		"size":      cfg.Size,
		"seed":      p.Seed,
		"trees":     p.TreeCount,
	}).Info("puzzle generated")

	return state.StartPlay(p)
}

// BuildGame creates the first game of the process
func BuildGame(cfg Config) *state.Game {
	active = cfg.withDefaults()

	g := newGame(active)

	logMessage(g, "GT{WELCOME}")
	logBoardInfo(g)
	logMessage(g, i18n.T("HELP_KEYS"))

	return g
}

// ResetGame discards g and returns a new game with a fresh puzzle.
// With a fixed seed the new puzzle is the same board, started over.
func ResetGame(g *state.Game) *state.Game {
	next := newGame(active)

	fields := logrus.Fields{"seed": next.Puzzle.Seed}
	if g != nil {
		fields["previous_seed"] = g.Puzzle.Seed
		fields["previous_toggles"] = g.Toggles
		fields["previous_won"] = g.Won
	}
	logging.Log.WithFields(fields).Info("game reset")

	logMessage(next, "GT{RESET}")
	logBoardInfo(next)

	return next
}

// logBoardInfo adds the size, tree count and seed line
func logBoardInfo(g *state.Game) {
	logMessage(g, i18n.T("BOARD_INFO"), g.Size(), g.Size(), g.TreeCount(), g.Puzzle.Seed)
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}
