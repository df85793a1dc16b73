package maze

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samdwyer/superseed/internal/grid"
)

// Shape is an obstacle pattern grown from an anchor cell.
type Shape int

const (
	Plus Shape = iota
	T
	L
	Arc
)

// Variants is the number of orientations each shape can take.
const Variants = 4

// AllShapes returns every shape in a fixed order.
func AllShapes() []Shape {
	return []Shape{Plus, T, L, Arc}
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s >= Plus && s <= Arc
}

// String returns the shape name used in data files.
func (s Shape) String() string {
	switch s {
	case Plus:
		return "plus"
	case T:
		return "T"
	case L:
		return "L"
	case Arc:
		return "arc"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape converts a shape name, case-insensitively.
func ParseShape(name string) (Shape, error) {
	for _, s := range AllShapes() {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return Plus, fmt.Errorf("unknown shape %q", name)
}

// Arm directions: up, down, left, right.
var arms = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Perpendicular arm pairs indexed by variant.
var (
	lPairs   = [Variants][2]int{{3, 1}, {2, 1}, {3, 0}, {2, 0}} // (right,down) (left,down) (right,up) (left,up)
	arcPairs = [Variants][2]int{{2, 0}, {3, 0}, {2, 1}, {3, 1}} // up-left up-right down-left down-right
)

// ShapeCells returns the unclipped cells of a shape anchored at center.
// variant picks the omitted arm for T, the orientation for L and the quadrant for Arc;
// it is ignored for Plus. The center is always the first cell.
func ShapeCells(center grid.Position, armLength int, shape Shape, variant int) []grid.Position {
	variant = ((variant % Variants) + Variants) % Variants

	var dirs []int
	switch shape {
	case T:
		for i := range arms {
			if i != variant {
				dirs = append(dirs, i)
			}
		}
	case L:
		dirs = lPairs[variant][:]
	case Arc:
		dirs = arcPairs[variant][:]
	default:
		dirs = []int{0, 1, 2, 3}
	}

	cells := make([]grid.Position, 0, 1+len(dirs)*armLength)
	cells = append(cells, center)
	for _, d := range dirs {
		for dist := 1; dist <= armLength; dist++ {
			cells = append(cells, center.Add(arms[d][0]*dist, arms[d][1]*dist))
		}
	}
	return cells
}

// clipInterior drops cells that are not strictly inside the border.
func clipInterior(g *grid.Grid, cells []grid.Position) []grid.Position {
	out := cells[:0]
	for _, c := range cells {
		if g.IsInterior(c) {
			out = append(out, c)
		}
	}
	return out
}

// pickShape draws a shape by weight. Missing or nil weights fall back to uniform.
func pickShape(rng *rand.Rand, weights map[Shape]int) Shape {
	shapes := AllShapes()
	if len(weights) == 0 {
		return shapes[rng.Intn(len(shapes))]
	}

	total := 0
	for _, s := range shapes {
		total += max(weights[s], 0)
	}
	if total == 0 {
		return shapes[rng.Intn(len(shapes))]
	}

	roll := rng.Intn(total)
	for _, s := range shapes {
		w := max(weights[s], 0)
		if roll < w {
			return s
		}
		roll -= w
	}
	return shapes[len(shapes)-1]
}
