// Package rules checks a play board against the puzzle clues and the
// adjacency rules.
package rules

import (
	"fmt"

	"tentsandtrees/pkg/engine/world"
)

// Reason identifies the first check a board failed
type Reason int

// Reasons, in the order the checks run
const (
	ReasonNone Reason = iota
	ReasonTentCount
	ReasonRowCount
	ReasonColCount
	ReasonNoAdjacentTree
	ReasonAdjacentTent
)

// String returns a short description of the reason
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "solved"
	case ReasonTentCount:
		return "tent count differs from tree count"
	case ReasonRowCount:
		return "row clue not met"
	case ReasonColCount:
		return "column clue not met"
	case ReasonNoAdjacentTree:
		return "tent without an adjacent tree"
	case ReasonAdjacentTent:
		return "tent touching another tent"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of evaluating a board.
// Index is the offending row or column for clue failures; Row and Col locate
// the offending tent for adjacency failures.
type Verdict struct {
	Won    bool
	Reason Reason
	Index  int
	Row    int
	Col    int
}

// String describes the verdict
func (v Verdict) String() string {
	switch v.Reason {
	case ReasonRowCount, ReasonColCount:
		return fmt.Sprintf("%s (%d)", v.Reason, v.Index)
	case ReasonNoAdjacentTree, ReasonAdjacentTent:
		return fmt.Sprintf("%s (%d,%d)", v.Reason, v.Row, v.Col)
	default:
		return v.Reason.String()
	}
}

// CheckWin reports whether board solves the puzzle
func CheckWin(board *world.Grid, rowCounts, colCounts []int, placedTents, treeCount int) bool {
	return Evaluate(board, rowCounts, colCounts, placedTents, treeCount).Won
}

// Evaluate runs the win checks in order and stops at the first failure:
// the placed tent count must equal the tree count, every row and then every
// column must hold its clue's number of tents, and every tent must touch a
// tree and no other tent. The board is not modified.
func Evaluate(board *world.Grid, rowCounts, colCounts []int, placedTents, treeCount int) Verdict {
	if placedTents != treeCount {
		return Verdict{Reason: ReasonTentCount}
	}

	size := board.Size()
	for row := 0; row < size; row++ {
		if board.RowTents(row) != rowCounts[row] {
			return Verdict{Reason: ReasonRowCount, Index: row}
		}
	}

	for col := 0; col < size; col++ {
		if board.ColTents(col) != colCounts[col] {
			return Verdict{Reason: ReasonColCount, Index: col}
		}
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !board.GetCell(row, col).Tent {
				continue
			}
			if !board.HasAdjacentTree(row, col) {
				return Verdict{Reason: ReasonNoAdjacentTree, Row: row, Col: col}
			}
			if board.HasAdjacentTent(row, col) {
				return Verdict{Reason: ReasonAdjacentTent, Row: row, Col: col}
			}
		}
	}

	return Verdict{Won: true, Reason: ReasonNone}
}
