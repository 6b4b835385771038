package generator

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"tentsandtrees/pkg/engine/logging"
	"tentsandtrees/pkg/engine/random"
	"tentsandtrees/pkg/engine/world"
)

// Generate places treeCount trees on an empty size×size grid, each with one
// adjacent tent, and sums the tents per row and column into the clues.
//
// A candidate tree whose neighbours offer no free tent slot is taken back
// and a new candidate is drawn; there is no attempt limit. When no free cell
// has a slot left the board is jammed and generation starts over on an
// empty grid with the same source.
func Generate(size, treeCount int, src *random.Source) *Puzzle {
	if maxTrees := MaxTrees(size); treeCount > maxTrees {
		logging.Log.WithFields(logrus.Fields{
			"requested": treeCount,
			"max":       maxTrees,
			"size":      size,
		}).Warn("tree count clamped")
		treeCount = maxTrees
	}

	p := &Puzzle{
		TreeCount: treeCount,
		Seed:      src.Seed(),
	}
	p.clear(size)

	// Cells already holding a tree or a tent
	taken := mapset.New[world.Position]()

	treesPlaced := 0
	for treesPlaced < treeCount {
		grid := p.Solution
		row := src.Intn(size)
		col := src.Intn(size)
		treePos := world.Position{Row: row, Col: col}

		if taken.Has(treePos) {
			continue
		}

		tree := grid.GetCell(row, col)
		tree.Tree = true
		taken.Put(treePos)

		tent := findTentSlot(grid, tree, random.Shuffle(src, world.AllDirections()))
		if tent == nil {
			// No free slot: take the tree back and draw another candidate
			tree.Tree = false
			taken.Remove(treePos)
			p.Abandoned++

			if !canPlaceTree(grid) {
				p.Restarts++
				logging.Log.WithFields(logrus.Fields{
					"size":   size,
					"trees":  treeCount,
					"placed": treesPlaced,
					"seed":   p.Seed,
				}).Debug("board jammed, starting over")
				p.clear(size)
				taken = mapset.New[world.Position]()
				treesPlaced = 0
			}
			continue
		}

		tent.Tent = true
		taken.Put(tent.Position())
		p.RowCounts[tent.Row]++
		p.ColCounts[tent.Col]++
		treesPlaced++
	}

	fields := logrus.Fields{
		"size":      size,
		"trees":     treeCount,
		"seed":      p.Seed,
		"abandoned": p.Abandoned,
		"restarts":  p.Restarts,
	}
	logging.Log.WithFields(fields).Debug("puzzle generated")

	if crowded := Audit(p); len(crowded) > 0 {
		fields["crowded_trees"] = crowded
		logging.Log.WithFields(fields).Warn("trees with more than one adjacent tent")
	}

	return p
}

// findTentSlot scans the tree's neighbours in the given order and returns the
// first one that is on the board, holds neither tree nor tent and does not
// touch an existing tent. It returns nil if there is none.
func findTentSlot(grid *world.Grid, tree *world.Cell, dirs []world.Direction) *world.Cell {
	for _, dir := range dirs {
		c := grid.GetCellRelative(tree, dir)
		if c == nil || c.Tree || c.Tent {
			continue
		}
		if grid.HasAdjacentTent(c.Row, c.Col) {
			continue
		}
		return c
	}
	return nil
}

// canPlaceTree reports whether some free cell still has a tent slot next to it
func canPlaceTree(grid *world.Grid) bool {
	found := false
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if found || cell.Tree || cell.Tent {
			return
		}
		found = findTentSlot(grid, cell, world.AllDirections()) != nil
	})
	return found
}

// clear empties the solution board and the clues
func (p *Puzzle) clear(size int) {
	p.Solution = world.NewGrid(size)
	p.RowCounts = make([]int, size)
	p.ColCounts = make([]int, size)
}
