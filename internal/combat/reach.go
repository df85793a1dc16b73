package combat

import "github.com/samdwyer/superseed/internal/grid"

// Reach returns the Chebyshev distance in cells from a size x size footprint
// with top-left cell origin to the cell target. Zero means the target is
// inside the footprint.
func Reach(origin grid.Position, size int, target grid.Position) int {
	size = max(size, 1)
	dx := axisGap(origin.X, origin.X+size-1, target.X)
	dy := axisGap(origin.Y, origin.Y+size-1, target.Y)
	return max(dx, dy)
}

func axisGap(lo, hi, v int) int {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}

// LineOfSight reports whether to is on the same row or column as from, at
// most rng cells away, with only open cells strictly between them.
func LineOfSight(g *grid.Grid, from, to grid.Position, rng int) bool {
	if from == to {
		return true
	}
	if from.X != to.X && from.Y != to.Y {
		return false
	}
	if from.Manhattan(to) > rng {
		return false
	}
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	for p := from.Add(dx, dy); p != to; p = p.Add(dx, dy) {
		if !g.IsOpen(p) {
			return false
		}
	}
	return true
}

// FootprintSight is LineOfSight from any cell of a size x size footprint.
func FootprintSight(g *grid.Grid, origin grid.Position, size int, to grid.Position, rng int) bool {
	size = max(size, 1)
	for y := origin.Y; y < origin.Y+size; y++ {
		for x := origin.X; x < origin.X+size; x++ {
			if LineOfSight(g, grid.Pos(x, y), to, rng) {
				return true
			}
		}
	}
	return false
}

// SwingCells returns the cells a melee swing covers: the attacker's cell and
// the cell it faces.
func SwingCells(from grid.Position, facingRight bool) [2]grid.Position {
	dx := -1
	if facingRight {
		dx = 1
	}
	return [2]grid.Position{from, from.Add(dx, 0)}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
