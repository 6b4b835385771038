package gameplay

import (
	"github.com/sirupsen/logrus"

	"tentsandtrees/pkg/engine/logging"
	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/i18n"
	"tentsandtrees/pkg/game/rules"
	"tentsandtrees/pkg/game/state"
)

// ToggleCell cycles the cell at row, col and runs the win check.
// Once the puzzle is won the board is frozen until reset.
func ToggleCell(g *state.Game, row, col int) {
	if g.Won {
		logMessage(g, "GT{ALREADY_WON}")
		return
	}

	newState, changed := g.ToggleCell(row, col)
	if !changed {
		if newState == world.StateTree {
			logMessage(g, "GT{CELL_IS_TREE}")
		}
		return
	}

	logging.Log.WithFields(logrus.Fields{
		"row":    row,
		"col":    col,
		"state":  newState.String(),
		"placed": g.PlacedTents,
	}).Debug("cell toggled")

	CheckWin(g)
}

// CheckWin evaluates the board and records the win if it is solved
func CheckWin(g *state.Game) bool {
	p := g.Puzzle
	verdict := rules.Evaluate(g.Board, p.RowCounts, p.ColCounts, g.PlacedTents, p.TreeCount)
	if !verdict.Won {
		// only log near misses: every tent placed but something is wrong
		if verdict.Reason != rules.ReasonTentCount {
			logging.Log.WithField("verdict", verdict.String()).Debug("board not solved")
		}
		return false
	}

	g.MarkWon(now())

	logging.Log.WithFields(logrus.Fields{
		"seed":    p.Seed,
		"toggles": g.Toggles,
	}).Info("puzzle solved")

	logMessage(g, i18n.T("CONGRATULATIONS"), g.Toggles)
	return true
}
