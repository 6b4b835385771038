// Package generator tests puzzle generation: clue conservation, tree and tent
// counts, tent separation, determinism and the tent slot search.
package generator

import (
	"testing"

	"tentsandtrees/pkg/engine/random"
	"tentsandtrees/pkg/engine/world"
)

// tentsTouching returns pairs of orthogonally adjacent tents.
func tentsTouching(grid *world.Grid) []world.Position {
	var out []world.Position
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Tent && grid.HasAdjacentTent(row, col) {
			out = append(out, cell.Position())
		}
	})
	return out
}

func TestTreeCountFor(t *testing.T) {
	cases := []struct {
		size, want int
	}{
		{7, 14},
		{5, 7},
		{10, 30},
		{1, 0},
	}
	for _, tc := range cases {
		if got := TreeCountFor(tc.size); got != tc.want {
			t.Errorf("TreeCountFor(%d) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestGenerate_ClueConservation(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		p := DefaultGenerator.Generate(DefaultSize, seed)
		rows, cols := ClueTotals(p)
		if rows != p.TreeCount || cols != p.TreeCount {
			t.Errorf("seed %d: row sum %d, col sum %d, want %d", seed, rows, cols, p.TreeCount)
		}
		if len(p.RowCounts) != DefaultSize || len(p.ColCounts) != DefaultSize {
			t.Errorf("seed %d: clue lengths %d/%d, want %d", seed, len(p.RowCounts), len(p.ColCounts), DefaultSize)
		}
	}
}

func TestGenerate_CountsMatchSolution(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		p := DefaultGenerator.Generate(DefaultSize, seed)
		grid := p.Solution
		if got := grid.CountTrees(); got != 14 {
			t.Errorf("seed %d: %d trees, want 14", seed, got)
		}
		if got := grid.CountTents(); got != 14 {
			t.Errorf("seed %d: %d tents, want 14", seed, got)
		}
		for i := 0; i < grid.Size(); i++ {
			if grid.RowTents(i) != p.RowCounts[i] {
				t.Errorf("seed %d: row %d has %d tents, clue %d", seed, i, grid.RowTents(i), p.RowCounts[i])
			}
			if grid.ColTents(i) != p.ColCounts[i] {
				t.Errorf("seed %d: col %d has %d tents, clue %d", seed, i, grid.ColTents(i), p.ColCounts[i])
			}
		}
		if msg := grid.Validate(); msg != "" {
			t.Errorf("seed %d: Validate() = %q", seed, msg)
		}
	}
}

func TestGenerate_TentsNeverTouch(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		p := DefaultGenerator.Generate(DefaultSize, seed)
		if bad := tentsTouching(p.Solution); len(bad) > 0 {
			t.Errorf("seed %d: tents with adjacent tents at %v", seed, bad)
		}
	}
}

func TestGenerate_EveryTreeHasATentAndEveryTentATree(t *testing.T) {
	crowdedBoards := 0
	for seed := int64(1); seed <= 100; seed++ {
		p := DefaultGenerator.Generate(DefaultSize, seed)
		grid := p.Solution
		grid.ForEachCell(func(row, col int, cell *world.Cell) {
			if cell.Tree && !grid.HasAdjacentTent(row, col) {
				t.Errorf("seed %d: tree %d,%d has no adjacent tent", seed, row, col)
			}
			if cell.Tent && !grid.HasAdjacentTree(row, col) {
				t.Errorf("seed %d: tent %d,%d has no adjacent tree", seed, row, col)
			}
		})
		// Trees next to a second tent are possible; report, do not fail
		if crowded := Audit(p); len(crowded) > 0 {
			crowdedBoards++
			t.Logf("seed %d: trees with more than one adjacent tent: %v", seed, crowded)
		}
	}
	t.Logf("%d of 100 boards have a tree touching more than one tent", crowdedBoards)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := DefaultGenerator.Generate(DefaultSize, 99)
	b := DefaultGenerator.Generate(DefaultSize, 99)
	if a.Solution.String() != b.Solution.String() {
		t.Errorf("same seed produced different boards:\n%s\n%s", a.Solution, b.Solution)
	}
	if a.Seed != 99 {
		t.Errorf("Seed = %d, want 99", a.Seed)
	}
}

func TestGenerate_OtherSizes(t *testing.T) {
	for _, size := range []int{2, 3, 5, 10} {
		p := Generate(size, TreeCountFor(size), random.New(int64(size)))
		if p.Size() != size {
			t.Errorf("Size() = %d, want %d", p.Size(), size)
		}
		if got := p.Solution.CountTrees(); got != TreeCountFor(size) {
			t.Errorf("size %d: %d trees, want %d", size, got, TreeCountFor(size))
		}
	}
}

func TestGenerate_ClampsImpossibleTreeCount(t *testing.T) {
	for size := MinSize; size <= 7; size++ {
		for seed := int64(1); seed <= 20; seed++ {
			p := Generate(size, size*size, random.New(seed))
			want := MaxTrees(size)
			if p.TreeCount != want {
				t.Errorf("size %d seed %d: TreeCount = %d, want clamp to %d", size, seed, p.TreeCount, want)
			}
			if got := p.Solution.CountTrees(); got != want {
				t.Errorf("size %d seed %d: %d trees, want %d", size, seed, got, want)
			}
			if got := p.Solution.CountTents(); got != want {
				t.Errorf("size %d seed %d: %d tents, want %d", size, seed, got, want)
			}
		}
	}
}

func TestGenerate_EverySupportedSize(t *testing.T) {
	for size := MinSize; size <= MaxSize; size++ {
		for seed := int64(1); seed <= 20; seed++ {
			p := DefaultGenerator.Generate(size, seed)
			rows, cols := ClueTotals(p)
			if rows != TreeCountFor(size) || cols != TreeCountFor(size) {
				t.Errorf("size %d seed %d: clue sums %d/%d, want %d", size, seed, rows, cols, TreeCountFor(size))
			}
			if bad := tentsTouching(p.Solution); len(bad) > 0 {
				t.Errorf("size %d seed %d: tents touch at %v", size, seed, bad)
			}
		}
	}
}

func TestValidateSize(t *testing.T) {
	cases := []struct {
		size int
		ok   bool
	}{
		{MinSize - 1, false},
		{MinSize, true},
		{DefaultSize, true},
		{MaxSize, true},
		{MaxSize + 1, false},
	}
	for _, tc := range cases {
		if err := ValidateSize(tc.size); (err == nil) != tc.ok {
			t.Errorf("ValidateSize(%d) error = %v, want ok %v", tc.size, err, tc.ok)
		}
	}
}

func TestCanPlaceTree(t *testing.T) {
	cases := []struct {
		name  string
		trees []world.Position
		tents []world.Position
		want  bool
	}{
		{"empty board", nil, nil, true},
		{
			"one pair leaves a diagonal slot",
			[]world.Position{{Row: 0, Col: 0}},
			[]world.Position{{Row: 0, Col: 1}},
			true,
		},
		{
			"free cell walled in by trees",
			[]world.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
			[]world.Position{{Row: 0, Col: 1}},
			false,
		},
		{
			"full board",
			[]world.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
			[]world.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := world.NewGrid(2)
			for _, pos := range tc.trees {
				grid.GetCell(pos.Row, pos.Col).Tree = true
			}
			for _, pos := range tc.tents {
				grid.GetCell(pos.Row, pos.Col).Tent = true
			}
			if got := canPlaceTree(grid); got != tc.want {
				t.Errorf("canPlaceTree() = %v, want %v\n%s", got, tc.want, grid)
			}
		})
	}
}

func TestGenerate_ZeroTrees(t *testing.T) {
	p := Generate(1, 0, random.New(1))
	if p.Solution.CountTrees() != 0 || p.Solution.CountTents() != 0 {
		t.Errorf("1x1 board with zero trees is not empty:\n%s", p.Solution)
	}
}

func TestFindTentSlot_RejectsCellTouchingTent(t *testing.T) {
	// 3x3: tree A at 0,0 with its tent at 0,1. Tree B at 2,1 two rows below
	// the tent. B's North neighbour 1,1 touches A's tent and must be skipped.
	grid := world.NewGrid(3)
	grid.GetCell(0, 0).Tree = true
	grid.GetCell(0, 1).Tent = true
	treeB := grid.GetCell(2, 1)
	treeB.Tree = true

	slot := findTentSlot(grid, treeB, []world.Direction{world.North, world.West})
	if slot == nil {
		t.Fatal("findTentSlot = nil, want 2,0")
	}
	if slot.Row != 2 || slot.Col != 0 {
		t.Errorf("findTentSlot = %d,%d, want 2,0 (1,1 touches a tent)", slot.Row, slot.Col)
	}
}

func TestFindTentSlot_SharedCandidate(t *testing.T) {
	// 3x3: trees two cells apart at 1,0 and 1,2 share the candidate 1,1.
	grid := world.NewGrid(3)
	treeA := grid.GetCell(1, 0)
	treeA.Tree = true
	treeB := grid.GetCell(1, 2)
	treeB.Tree = true

	first := findTentSlot(grid, treeA, []world.Direction{world.East})
	if first == nil || first.Row != 1 || first.Col != 1 {
		t.Fatalf("first slot = %v, want 1,1", first)
	}
	first.Tent = true

	// 1,1 now holds a tent; the only other candidates for B are corners
	second := findTentSlot(grid, treeB, []world.Direction{world.West, world.North})
	if second == nil || second.Row != 0 || second.Col != 2 {
		t.Fatalf("second slot = %v, want 0,2", second)
	}
	second.Tent = true

	if bad := tentsTouching(grid); len(bad) > 0 {
		t.Errorf("tents touch at %v", bad)
	}
}

func TestFindTentSlot_NoSlot(t *testing.T) {
	// 2x2: one neighbour of the tree is a tree, the other touches a tent
	grid := world.NewGrid(2)
	grid.GetCell(0, 0).Tree = true
	grid.GetCell(0, 1).Tree = true
	grid.GetCell(1, 1).Tent = true
	if slot := findTentSlot(grid, grid.GetCell(0, 0), world.AllDirections()); slot != nil {
		t.Errorf("findTentSlot = %d,%d, want nil", slot.Row, slot.Col)
	}
}

func TestAudit_FlagsCrowdedTree(t *testing.T) {
	grid := world.NewGrid(3)
	grid.GetCell(1, 1).Tree = true
	grid.GetCell(0, 1).Tent = true
	grid.GetCell(2, 1).Tent = true
	p := &Puzzle{Solution: grid, RowCounts: []int{1, 0, 1}, ColCounts: []int{0, 2, 0}, TreeCount: 1}

	crowded := Audit(p)
	if len(crowded) != 1 || crowded[0] != (world.Position{Row: 1, Col: 1}) {
		t.Errorf("Audit() = %v, want [{1 1}]", crowded)
	}
}

func TestRandomPlacementGenerator_Name(t *testing.T) {
	if RandomPlacement.Name() == "" {
		t.Error("Name() is empty")
	}
}
