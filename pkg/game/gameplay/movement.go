package gameplay

import (
	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/state"
)

// MoveCursor moves the cursor one cell. Moves off the board are ignored.
func MoveCursor(g *state.Game, dir world.Direction) bool {
	if !dir.IsValid() {
		return false
	}
	return g.MoveCursor(dir)
}
