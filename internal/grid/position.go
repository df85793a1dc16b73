package grid

import (
	"fmt"
	"math"
)

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position offset by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance between two positions.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(float64(p.X-o.X), float64(p.Y-o.Y))
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Side is one of the four edges of the grid.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// AllSides returns the four sides in a fixed order.
func AllSides() []Side {
	return []Side{Top, Bottom, Left, Right}
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the side across the grid.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return Left
	}
}

// Inward returns the unit step from a cell on this side into the interior.
func (s Side) Inward() (dx, dy int) {
	switch s {
	case Top:
		return 0, 1
	case Bottom:
		return 0, -1
	case Left:
		return 1, 0
	default:
		return -1, 0
	}
}

// neighbors4 are the 4-directional adjacency offsets.
var neighbors4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
