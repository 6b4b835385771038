package world

// Neighbors returns the in-bounds orthogonal neighbours of (row, col).
// Diagonals never count.
func (g *Grid) Neighbors(row, col int) []*Cell {
	neighbors := make([]*Cell, 0, 4)
	for _, dir := range AllDirections() {
		if n := g.GetCell(dir.Step(row, col)); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// HasAdjacentTree reports whether any orthogonal neighbour holds a tree
func (g *Grid) HasAdjacentTree(row, col int) bool {
	for _, n := range g.Neighbors(row, col) {
		if n.Tree {
			return true
		}
	}
	return false
}

// HasAdjacentTent reports whether any orthogonal neighbour holds a tent
func (g *Grid) HasAdjacentTent(row, col int) bool {
	return g.AdjacentTents(row, col) > 0
}

// AdjacentTents counts orthogonal neighbours holding a tent
func (g *Grid) AdjacentTents(row, col int) int {
	n := 0
	for _, c := range g.Neighbors(row, col) {
		if c.Tent {
			n++
		}
	}
	return n
}
