package gameplay

import (
	"fmt"
	"strings"

	engineinput "tentsandtrees/pkg/engine/input"
	"tentsandtrees/pkg/game/state"
)

// helpActions are listed in the help line, in this order
var helpActions = []engineinput.Action{
	engineinput.ActionToggle,
	engineinput.ActionReset,
	engineinput.ActionDump,
	engineinput.ActionScreenshot,
	engineinput.ActionQuit,
}

// shortestCode picks the shortest binding, which is the one worth showing
func shortestCode(codes []string) string {
	best := ""
	for _, c := range codes {
		if best == "" || len(c) < len(best) {
			best = c
		}
	}
	return best
}

// BindingsSummary describes the main key bindings in one line of markup
func BindingsSummary() string {
	bindings := engineinput.GetBindingsByAction()

	var parts []string
	for _, act := range helpActions {
		code := shortestCode(bindings[act])
		if code == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("ACTION{%s} %s", code, engineinput.ActionName(act)))
	}
	return strings.Join(parts, "  ")
}

// ShowHelp adds the rules and key bindings to the message log
func ShowHelp(g *state.Game) {
	logMessage(g, "GT{HELP_RULES}")
	logMessage(g, "GT{HELP_CLUES}")
	logMessage(g, BindingsSummary())
}
