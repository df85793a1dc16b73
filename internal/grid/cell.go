// Package grid provides the shared cell grid, its reachability queries and
// the pixel <-> cell conversion used by every layer that walks a maze.
package grid

// Cell represents the state of a single grid cell.
type Cell uint8

const (
	// Open is a walkable cell.
	Open Cell = 0
	// Wall is an impassable cell.
	Wall Cell = 1
)

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c == Open
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	if c == Wall {
		return '#'
	}
	return '.'
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}
