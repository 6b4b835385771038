// Package generator builds Tents and Trees puzzles: a solution board with
// trees and one tent per tree, plus the row and column tent clues.
package generator

import (
	"fmt"

	"tentsandtrees/pkg/engine/random"
	"tentsandtrees/pkg/engine/world"
)

// Board defaults
const (
	DefaultSize = 7
	TreeDensity = 0.3
)

// Board sizes the game accepts. Generation at the default density is
// exercised across seeds for every size in this range.
const (
	MinSize = 2
	MaxSize = 10
)

// Puzzle is a generated board and its published clues
type Puzzle struct {
	// Solution holds the trees and the tent placed for each of them.
	// It is never shown to the player and is read-only after generation.
	Solution *world.Grid

	RowCounts []int
	ColCounts []int

	TreeCount int
	Seed      int64

	// Abandoned counts candidate trees taken back because no tent slot was free
	Abandoned int

	// Restarts counts boards thrown away because no free cell had a tent slot left
	Restarts int
}

// Size returns the side length of the puzzle board
func (p *Puzzle) Size() int {
	return p.Solution.Size()
}

// PuzzleGenerator is an interface for puzzle generation algorithms
type PuzzleGenerator interface {
	Generate(size int, seed int64) *Puzzle
	Name() string
}

// Available generators
var (
	RandomPlacement = &RandomPlacementGenerator{}
)

// DefaultGenerator is the default puzzle generator
var DefaultGenerator PuzzleGenerator = RandomPlacement

// TreeCountFor returns the number of trees for a board of the given size
func TreeCountFor(size int) int {
	return int(float64(size*size) * TreeDensity)
}

// MaxTrees returns the most trees Generate places on a board of the given
// size. The placer never moves a tent once placed, so boards jam far below
// one tree per two cells; requests above the default density are clamped.
func MaxTrees(size int) int {
	return TreeCountFor(size)
}

// ValidateSize reports whether size is within MinSize and MaxSize
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("board size must be between %d and %d, got %d", MinSize, MaxSize, size)
	}
	return nil
}

// RandomPlacementGenerator drops trees at random cells and gives each one a
// tent on a shuffled free neighbour
type RandomPlacementGenerator struct{}

// Name returns the name of this generator
func (g *RandomPlacementGenerator) Name() string {
	return "Random Placement"
}

// Generate creates a puzzle of the given size with the default tree density
func (g *RandomPlacementGenerator) Generate(size int, seed int64) *Puzzle {
	return Generate(size, TreeCountFor(size), random.New(seed))
}
