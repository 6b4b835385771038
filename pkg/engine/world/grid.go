package world

import (
	"fmt"
	"strings"
)

// Grid is a square board of cells with encapsulated storage
type Grid struct {
	cells [][]*Cell
	size  int
}

// NewGrid creates an empty size×size grid
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Build initializes the grid with empty cells
func (g *Grid) Build(size int) {
	if size <= 0 {
		panic("Grid size must be positive")
	}

	g.size = size
	g.cells = make([][]*Cell, size)

	for row := 0; row < size; row++ {
		g.cells[row] = make([]*Cell, size)
		for col := 0; col < size; col++ {
			g.cells[row][col] = NewCell(row, col)
		}
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// GetCellRelative returns the neighbour of c in the given direction, or nil
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	return g.GetCell(dir.Step(c.Row, c.Col))
}

// CenterPosition returns the row and column of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.size / 2, g.size / 2
}

// ForEachCell iterates over all cells row by row
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Clone returns a structural deep copy; the copy shares no cells with g
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([][]*Cell, g.size)}
	for row := 0; row < g.size; row++ {
		c.cells[row] = make([]*Cell, g.size)
		for col := 0; col < g.size; col++ {
			cell := *g.cells[row][col]
			c.cells[row][col] = &cell
		}
	}
	return c
}

// ClearTents removes every tent and grass mark, keeping trees
func (g *Grid) ClearTents() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		cell.Tent = false
		cell.Marked = false
	})
}

// RowTents counts tents in a row
func (g *Grid) RowTents(row int) int {
	n := 0
	for col := 0; col < g.size; col++ {
		if g.cells[row][col].Tent {
			n++
		}
	}
	return n
}

// ColTents counts tents in a column
func (g *Grid) ColTents(col int) int {
	n := 0
	for row := 0; row < g.size; row++ {
		if g.cells[row][col].Tent {
			n++
		}
	}
	return n
}

// CountTents returns the number of tent cells on the grid
func (g *Grid) CountTents() int {
	n := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Tent {
			n++
		}
	})
	return n
}

// CountTrees returns the number of tree cells on the grid
func (g *Grid) CountTrees() int {
	n := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Tree {
			n++
		}
	})
	return n
}

// TentPositions lists tent cells in row-major order
func (g *Grid) TentPositions() []Position {
	var out []Position
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Tent {
			out = append(out, cell.Position())
		}
	})
	return out
}

// TreePositions lists tree cells in row-major order
func (g *Grid) TreePositions() []Position {
	var out []Position
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Tree {
			out = append(out, cell.Position())
		}
	})
	return out
}

// String renders the grid with T (tree), A (tent), x (grass) and . (blank)
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			b.WriteString(symbol(g.cells[row][col]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func symbol(c *Cell) string {
	switch c.State() {
	case StateTree:
		return "T"
	case StateTent:
		return "A"
	case StateMarked:
		return "x"
	default:
		return "."
	}
}

// Validate checks the cell flags for impossible combinations and returns an
// error description or empty string if valid
func (g *Grid) Validate() string {
	if g.size <= 0 {
		return "Grid has invalid dimensions"
	}

	problem := ""
	g.ForEachCell(func(row, col int, cell *Cell) {
		if problem != "" {
			return
		}
		switch {
		case cell.Tree && (cell.Tent || cell.Marked):
			problem = fmt.Sprintf("Tree cell %d,%d carries a tent or mark", row, col)
		case cell.Tent && cell.Marked:
			problem = fmt.Sprintf("Cell %d,%d is both tent and marked", row, col)
		case cell.Row != row || cell.Col != col:
			problem = fmt.Sprintf("Cell at %d,%d reports position %d,%d", row, col, cell.Row, cell.Col)
		}
	})
	return problem
}
