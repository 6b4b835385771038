// Package state holds the mutable play state of one game.
package state

import (
	"time"

	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/generator"
)

const maxMessages = 5

// Game represents the play state for a single puzzle
type Game struct {
	// Puzzle is the generated solution and clues; never mutated during play
	Puzzle *generator.Puzzle

	// Board is the player's copy of the solution with tents removed
	Board *world.Grid

	// PlacedTents always equals the number of tent cells on Board
	PlacedTents int

	// Toggles counts player toggles that changed a cell
	Toggles int

	CursorRow int
	CursorCol int

	Messages []string

	Won   bool
	WonAt time.Time

	Quit bool
}

// StartPlay creates the play state for a generated puzzle: a deep copy of the
// solution with every tent cleared and the tent counter at zero
func StartPlay(p *generator.Puzzle) *Game {
	board := p.Solution.Clone()
	board.ClearTents()

	row, col := board.CenterPosition()
	return &Game{
		Puzzle:    p,
		Board:     board,
		CursorRow: row,
		CursorCol: col,
		Messages:  make([]string, 0),
	}
}

// Size returns the side length of the board
func (g *Game) Size() int {
	return g.Board.Size()
}

// TreeCount returns the number of trees (and therefore tents) in the puzzle
func (g *Game) TreeCount() int {
	return g.Puzzle.TreeCount
}

// ToggleCell cycles a non-tree cell blank → marked → tent → blank and
// returns its new state. Tree cells and positions off the board are left
// alone and reported with changed == false.
func (g *Game) ToggleCell(row, col int) (newState world.CellState, changed bool) {
	cell := g.Board.GetCell(row, col)
	if cell == nil {
		return world.StateBlank, false
	}
	if cell.Tree {
		return world.StateTree, false
	}

	switch cell.State() {
	case world.StateBlank:
		cell.Marked = true
	case world.StateMarked:
		cell.Marked = false
		cell.Tent = true
		g.PlacedTents++
	case world.StateTent:
		cell.Tent = false
		g.PlacedTents--
	}

	g.Toggles++
	return cell.State(), true
}

// CursorCell returns the cell under the cursor
func (g *Game) CursorCell() *world.Cell {
	return g.Board.GetCell(g.CursorRow, g.CursorCol)
}

// MoveCursor moves the cursor one cell, staying on the board.
// Returns false if the move would leave the board.
func (g *Game) MoveCursor(dir world.Direction) bool {
	row, col := dir.Step(g.CursorRow, g.CursorCol)
	if !g.Board.IsValidPosition(row, col) {
		return false
	}
	g.CursorRow, g.CursorCol = row, col
	return true
}

// SetCursor places the cursor at row, col if it is on the board
func (g *Game) SetCursor(row, col int) bool {
	if !g.Board.IsValidPosition(row, col) {
		return false
	}
	g.CursorRow, g.CursorCol = row, col
	return true
}

// MarkWon records the moment the puzzle was solved
func (g *Game) MarkWon(at time.Time) {
	g.Won = true
	g.WonAt = at
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
