package world

// Direction represents an orthogonal neighbour direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the four orthogonal directions in scan order (up, down, left, right)
func AllDirections() []Direction {
	return []Direction{North, South, West, East}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four orthogonal directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Step returns the position one cell away from (row, col) in this direction.
// The result may be out of bounds.
func (d Direction) Step(row, col int) (int, int) {
	dr, dc := d.Delta()
	return row + dr, col + dc
}
