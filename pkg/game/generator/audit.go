package generator

import (
	"tentsandtrees/pkg/engine/world"
)

// Audit returns the trees of the solution whose number of adjacent tents is
// not exactly one.
//
// Generation only checks that a new tent does not touch an existing tent, so
// a later tent can land next to a tree that already has one. Such boards are
// still solvable with the generated tents; Audit reports them so callers can
// see how often it happens.
func Audit(p *Puzzle) []world.Position {
	var out []world.Position
	grid := p.Solution
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Tree && grid.AdjacentTents(row, col) != 1 {
			out = append(out, cell.Position())
		}
	})
	return out
}

// ClueTotals returns the sums of the row and column clues
func ClueTotals(p *Puzzle) (rows, cols int) {
	for _, n := range p.RowCounts {
		rows += n
	}
	for _, n := range p.ColCounts {
		cols += n
	}
	return rows, cols
}
