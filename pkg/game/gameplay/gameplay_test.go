package gameplay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	engineinput "tentsandtrees/pkg/engine/input"
	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/generator"
	"tentsandtrees/pkg/game/i18n"
	"tentsandtrees/pkg/game/state"
)

// fixedGame builds a game on a known board and writes dumps to a temp dir
func fixedGame(t *testing.T, seed int64) *state.Game {
	t.Helper()
	old := active
	t.Cleanup(func() { active = old })
	return BuildGame(Config{Size: generator.DefaultSize, Seed: seed, DumpDir: t.TempDir()})
}

func lastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

func TestBuildGame(t *testing.T) {
	g := fixedGame(t, 42)

	want := generator.DefaultGenerator.Generate(generator.DefaultSize, 42)
	if g.Puzzle.Solution.String() != want.Solution.String() {
		t.Error("fixed seed did not reproduce the generator's board")
	}
	if g.PlacedTents != 0 || g.Won {
		t.Errorf("fresh game: placed=%d won=%v", g.PlacedTents, g.Won)
	}
	if g.Messages[0] != i18n.T("WELCOME") {
		t.Errorf("first message = %q", g.Messages[0])
	}
}

func TestBuildGame_Defaults(t *testing.T) {
	old := active
	t.Cleanup(func() { active = old })

	g := BuildGame(Config{Seed: 5})
	if g.Size() != generator.DefaultSize {
		t.Errorf("Size() = %d, want %d", g.Size(), generator.DefaultSize)
	}
	if active.DumpDir != "." {
		t.Errorf("DumpDir = %q, want .", active.DumpDir)
	}
}

func TestProcessIntent_ToggleCycle(t *testing.T) {
	g := fixedGame(t, 42)

	// find a cell without a tree and put the cursor there
	var target world.Position
	for _, p := range allPositions(g.Size()) {
		if !g.Board.GetCell(p.Row, p.Col).Tree {
			target = p
			break
		}
	}
	g.SetCursor(target.Row, target.Col)

	toggle := engineinput.Intent{Action: engineinput.ActionToggle}
	want := []world.CellState{world.StateMarked, world.StateTent, world.StateBlank}
	for i, w := range want {
		g = ProcessIntent(g, toggle)
		if got := g.CursorCell().State(); got != w {
			t.Fatalf("toggle %d: state = %v, want %v", i+1, got, w)
		}
	}
	if g.PlacedTents != 0 {
		t.Errorf("PlacedTents = %d after full cycle, want 0", g.PlacedTents)
	}
}

func TestProcessIntent_ToggleTree(t *testing.T) {
	g := fixedGame(t, 42)
	tree := g.Puzzle.Solution.TreePositions()[0]

	g = ProcessIntent(g, engineinput.ToggleAt(tree.Row, tree.Col))

	if !g.Board.GetCell(tree.Row, tree.Col).Tree {
		t.Fatal("tree lost after toggle")
	}
	if g.Toggles != 0 {
		t.Errorf("Toggles = %d, want 0", g.Toggles)
	}
	if lastMessage(g) != i18n.T("CELL_IS_TREE") {
		t.Errorf("last message = %q", lastMessage(g))
	}
	if g.CursorRow != tree.Row || g.CursorCol != tree.Col {
		t.Error("click did not move the cursor")
	}
}

func TestProcessIntent_ToggleAtOffBoard(t *testing.T) {
	g := fixedGame(t, 42)
	before := g.Toggles
	g = ProcessIntent(g, engineinput.ToggleAt(-1, 99))
	if g.Toggles != before {
		t.Error("off-board click changed the board")
	}
}

// solve places every solution tent through clicks
func solve(g *state.Game) *state.Game {
	for _, p := range g.Puzzle.Solution.TentPositions() {
		g = ProcessIntent(g, engineinput.ToggleAt(p.Row, p.Col))
		g = ProcessIntent(g, engineinput.ToggleAt(p.Row, p.Col))
	}
	return g
}

func TestProcessIntent_Win(t *testing.T) {
	g := fixedGame(t, 42)

	wonAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	oldNow := now
	now = func() time.Time { return wonAt }
	t.Cleanup(func() { now = oldNow })

	g = solve(g)

	if !g.Won {
		t.Fatal("game not won after placing every solution tent")
	}
	if !g.WonAt.Equal(wonAt) {
		t.Errorf("WonAt = %v, want %v", g.WonAt, wonAt)
	}
	if want := i18n.T("CONGRATULATIONS", g.Toggles); lastMessage(g) != want {
		t.Errorf("last message = %q, want %q", lastMessage(g), want)
	}

	// the board is frozen after a win
	tent := g.Puzzle.Solution.TentPositions()[0]
	toggles := g.Toggles
	g = ProcessIntent(g, engineinput.ToggleAt(tent.Row, tent.Col))
	if g.Toggles != toggles || g.Board.GetCell(tent.Row, tent.Col).State() != world.StateTent {
		t.Error("toggle after win changed the board")
	}
	if lastMessage(g) != i18n.T("ALREADY_WON") {
		t.Errorf("last message = %q", lastMessage(g))
	}
}

func TestProcessIntent_Reset(t *testing.T) {
	g := fixedGame(t, 42)
	g = solve(g)

	next := ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionReset})

	if next == g {
		t.Fatal("reset returned the same game")
	}
	if next.Won || next.PlacedTents != 0 || next.Toggles != 0 {
		t.Errorf("reset game: won=%v placed=%d toggles=%d", next.Won, next.PlacedTents, next.Toggles)
	}
	// fixed seed: same board again
	if next.Puzzle.Seed != 42 {
		t.Errorf("Seed = %d, want 42", next.Puzzle.Seed)
	}
	if next.Board.CountTents() != 0 {
		t.Error("reset board has tents")
	}
}

func TestResetGame_FreshSeed(t *testing.T) {
	old := active
	t.Cleanup(func() { active = old })

	g := BuildGame(Config{Size: 5})
	next := ResetGame(g)
	if next.Size() != 5 {
		t.Errorf("Size() = %d, want 5", next.Size())
	}
	if next.Puzzle.Seed == 0 {
		t.Error("reset used a zero seed")
	}
}

func TestProcessIntent_Movement(t *testing.T) {
	g := fixedGame(t, 42)
	g.SetCursor(0, 0)

	g = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveNorth})
	g = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveWest})
	if g.CursorRow != 0 || g.CursorCol != 0 {
		t.Errorf("cursor left the board: %d,%d", g.CursorRow, g.CursorCol)
	}

	g = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveSouth})
	g = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionMoveEast})
	if g.CursorRow != 1 || g.CursorCol != 1 {
		t.Errorf("cursor = %d,%d, want 1,1", g.CursorRow, g.CursorCol)
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	g := fixedGame(t, 42)
	g = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionQuit})
	if !g.Quit {
		t.Error("Quit not set")
	}
}

func TestProcessIntent_Dump(t *testing.T) {
	g := fixedGame(t, 42)
	g = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionDump})

	path := filepath.Join(active.DumpDir, "board.txt")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("dump not written: %v", err)
	}
	if !strings.Contains(lastMessage(g), "board.txt") {
		t.Errorf("last message = %q", lastMessage(g))
	}
}

func TestProcessIntent_Help(t *testing.T) {
	g := fixedGame(t, 42)
	g = ProcessIntent(g, engineinput.Intent{Action: engineinput.ActionHelp})

	if g.Messages[len(g.Messages)-3] != i18n.T("HELP_RULES") {
		t.Errorf("help rules missing: %v", g.Messages)
	}
	if !strings.Contains(lastMessage(g), "Toggle Cell") {
		t.Errorf("bindings line = %q", lastMessage(g))
	}
}

func TestBindingsSummary(t *testing.T) {
	got := BindingsSummary()
	for _, want := range []string{"ACTION{t} Toggle Cell", "ACTION{r} New Puzzle", "ACTION{q} Quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("BindingsSummary() = %q, missing %q", got, want)
		}
	}
}

func allPositions(size int) []world.Position {
	var out []world.Position
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			out = append(out, world.Position{Row: row, Col: col})
		}
	}
	return out
}
