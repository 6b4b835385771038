package ebiten

import (
	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/state"
)

// RenderFrame captures a snapshot of the game for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Board == nil || g.Puzzle == nil {
		e.snapshot.valid = false
		return
	}

	e.snapshot = captureSnapshot(g)
}

// captureSnapshot copies everything Draw needs so it never touches g
func captureSnapshot(g *state.Game) renderSnapshot {
	board := g.Board
	size := board.Size()

	snap := renderSnapshot{
		valid:     true,
		size:      size,
		cells:     make([][]world.CellState, size),
		rowCounts: append([]int(nil), g.Puzzle.RowCounts...),
		colCounts: append([]int(nil), g.Puzzle.ColCounts...),
		rowTents:  make([]int, size),
		colTents:  make([]int, size),
		cursorRow: g.CursorRow,
		cursorCol: g.CursorCol,
		placed:    g.PlacedTents,
		treeCount: g.TreeCount(),
		seed:      g.Puzzle.Seed,
		won:       g.Won,
		wonAt:     g.WonAt,
		messages:  append([]string(nil), g.Messages...),
	}

	for row := 0; row < size; row++ {
		snap.cells[row] = make([]world.CellState, size)
		snap.rowTents[row] = board.RowTents(row)
		for col := 0; col < size; col++ {
			snap.cells[row][col] = board.GetCell(row, col).State()
		}
	}
	for col := 0; col < size; col++ {
		snap.colTents[col] = board.ColTents(col)
	}

	return snap
}
