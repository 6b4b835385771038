package gameplay

import (
	"github.com/sirupsen/logrus"

	engineinput "tentsandtrees/pkg/engine/input"
	"tentsandtrees/pkg/engine/logging"
	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/devtools"
	"tentsandtrees/pkg/game/i18n"
	"tentsandtrees/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// It returns the game to continue with, which is a new one after a reset.
func ProcessIntent(g *state.Game, intent engineinput.Intent) *state.Game {
	switch intent.Action {
	case engineinput.ActionNone:
		return g

	case engineinput.ActionQuit:
		logMessage(g, "GT{GOODBYE}")
		g.Quit = true
		return g

	case engineinput.ActionReset:
		return ResetGame(g)

	case engineinput.ActionHelp:
		ShowHelp(g)
		return g

	case engineinput.ActionDump:
		path, err := devtools.DumpBoardToFile(g, active.DumpDir)
		if err != nil {
			logging.Log.WithError(err).Error("board dump failed")
			logMessage(g, i18n.T("DUMP_FAILED"), err)
		} else {
			logging.Log.WithField("path", path).Info("board dumped")
			logMessage(g, i18n.T("DUMPED"), path)
		}
		return g

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(g, active.DumpDir)
		if err != nil {
			logging.Log.WithError(err).Error("screenshot failed")
			logMessage(g, i18n.T("SCREENSHOT_FAILED"), err)
		} else {
			logMessage(g, i18n.T("SCREENSHOT_SAVED"), path)
		}
		return g

	case engineinput.ActionMoveNorth:
		MoveCursor(g, world.North)
		return g

	case engineinput.ActionMoveSouth:
		MoveCursor(g, world.South)
		return g

	case engineinput.ActionMoveWest:
		MoveCursor(g, world.West)
		return g

	case engineinput.ActionMoveEast:
		MoveCursor(g, world.East)
		return g

	case engineinput.ActionToggle:
		ToggleCell(g, g.CursorRow, g.CursorCol)
		return g

	case engineinput.ActionToggleAt:
		// clicks move the cursor too so keyboard play continues from there
		if g.SetCursor(intent.Row, intent.Col) {
			ToggleCell(g, intent.Row, intent.Col)
		}
		return g
	}

	logging.Log.WithFields(logrus.Fields{
		"action": engineinput.ActionName(intent.Action),
	}).Warn("unhandled intent")
	logMessage(g, "GT{UNKNOWN_COMMAND}")
	return g
}
