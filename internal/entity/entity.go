// Package entity provides the player, enemies, NPCs and items that live in a
// scene, and the rules for placing them on a maze.
package entity

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/superseed/internal/grid"
)

// Terrain is the maze surface entities stand on. *maze.Maze satisfies it.
type Terrain interface {
	Grid() *grid.Grid
	Collides(r grid.Rect) bool
	Entry() grid.Position
	Exit() grid.Position
	Layout() grid.Layout
	Width() int
	Height() int
}

// Placement distances, in pixels.
const (
	MinDoorDistance   = 100 // from the entry and exit doorways
	MinPlayerDistance = 200 // from the player
	placeAttempts     = 100
)

// NewID draws a UUID from rng so seeded runs get reproducible IDs.
func NewID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.New()
	}
	return id
}

// Footprint returns the pixel rectangle covering a size x size block of cells
// whose top-left cell is p.
func Footprint(l grid.Layout, p grid.Position, size int) grid.Rect {
	size = max(size, 1)
	first := l.CellRect(p)
	last := l.CellRect(p.Add(size-1, size-1))
	return grid.Rect{
		X: first.X,
		Y: first.Y,
		W: last.X + last.W - first.X,
		H: last.Y + last.H - first.Y,
	}
}

// PlaceAway picks a cell where a size x size footprint is clear of walls, far
// from both doorways and far from the player. It tries random cells and
// falls back to (1,1).
func PlaceAway(t Terrain, rng *rand.Rand, size int, player grid.Rect) grid.Position {
	l := t.Layout()
	ex, ey := l.PointForCell(t.Entry())
	xx, xy := l.PointForCell(t.Exit())

	for i := 0; i < placeAttempts; i++ {
		p := grid.Pos(rng.Intn(t.Width()), rng.Intn(t.Height()))
		if !inside(t, p, size) {
			continue
		}
		r := Footprint(l, p, size)
		if t.Collides(r) {
			continue
		}
		if pixelDistance(r.X, r.Y, ex, ey) <= MinDoorDistance || pixelDistance(r.X, r.Y, xx, xy) <= MinDoorDistance {
			continue
		}
		if pixelDistance(r.X, r.Y, player.X, player.Y) <= MinPlayerDistance {
			continue
		}
		return p
	}
	return grid.Pos(1, 1)
}

func inside(t Terrain, p grid.Position, size int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X+size <= t.Width() && p.Y+size <= t.Height()
}

func pixelDistance(x0, y0, x1, y1 int) float64 {
	return math.Hypot(float64(x1-x0), float64(y1-y0))
}

// canOccupy reports whether a size x size footprint at p is inside the grid
// and clear of walls.
func canOccupy(t Terrain, p grid.Position, size int) bool {
	return inside(t, p, size) && !t.Collides(Footprint(t.Layout(), p, size))
}
