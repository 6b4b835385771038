// Package world provides the square grid primitives the puzzle is played on.
package world

// CellState is the play-visible state of a single cell
type CellState int

// Cell states, in toggle order for non-tree cells
const (
	StateBlank CellState = iota
	StateMarked
	StateTent
	StateTree
)

// String returns a short name for the state
func (s CellState) String() string {
	switch s {
	case StateBlank:
		return "blank"
	case StateMarked:
		return "marked"
	case StateTent:
		return "tent"
	case StateTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Position identifies a cell by row and column
type Position struct {
	Row int
	Col int
}

// Cell represents a single square of the board.
// Tent and Marked are mutually exclusive, and a tree never carries either.
type Cell struct {
	Row int
	Col int

	Tree bool
	Tent bool

	// Marked is the player's "this is not a tent" annotation (grass)
	Marked bool
}

// NewCell creates an empty cell at the given position
func NewCell(row, col int) *Cell {
	return &Cell{Row: row, Col: col}
}

// Position returns the cell's position
func (c *Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// State derives the play-visible state from the cell flags
func (c *Cell) State() CellState {
	switch {
	case c.Tree:
		return StateTree
	case c.Tent:
		return StateTent
	case c.Marked:
		return StateMarked
	default:
		return StateBlank
	}
}

// IsEmpty returns true if the cell holds neither a tree nor a tent
func (c *Cell) IsEmpty() bool {
	return !c.Tree && !c.Tent
}
