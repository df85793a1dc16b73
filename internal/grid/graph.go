package grid

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Unreachable is returned by Distance when no open path exists.
const Unreachable = -1

// Connected reports whether an open 4-directional path joins a and b.
func (g *Grid) Connected(a, b Position) bool {
	return g.DistanceAvoiding(a, b, mapset.Set[Position]{}) != Unreachable
}

// Distance returns the BFS hop count between a and b, or Unreachable.
func (g *Grid) Distance(a, b Position) int {
	return g.DistanceAvoiding(a, b, mapset.Set[Position]{})
}

// ConnectedAvoiding is Connected with the blocked cells treated as wall.
func (g *Grid) ConnectedAvoiding(a, b Position, blocked mapset.Set[Position]) bool {
	return g.DistanceAvoiding(a, b, blocked) != Unreachable
}

// DistanceAvoiding is Distance with the blocked cells treated as wall.
// Both endpoints must be passable for a path to exist.
func (g *Grid) DistanceAvoiding(a, b Position, blocked mapset.Set[Position]) int {
	if !g.passable(a, blocked) || !g.passable(b, blocked) {
		return Unreachable
	}
	if a == b {
		return 0
	}

	type step struct {
		pos  Position
		dist int
	}

	visited := g.visitedMatrix()
	visited[a.Y][a.X] = true
	q := queue.New[step]()
	q.Enqueue(step{pos: a})

	for !q.Empty() {
		cur := q.Dequeue()
		for _, d := range neighbors4 {
			next := cur.pos.Add(d[0], d[1])
			if !g.passable(next, blocked) || visited[next.Y][next.X] {
				continue
			}
			if next == b {
				return cur.dist + 1
			}
			visited[next.Y][next.X] = true
			q.Enqueue(step{pos: next, dist: cur.dist + 1})
		}
	}

	return Unreachable
}

// Reachable returns every open cell connected to start, including start itself.
// The set is empty when start is not open.
func (g *Grid) Reachable(start Position) mapset.Set[Position] {
	seen := mapset.New[Position]()
	if !g.IsOpen(start) {
		return seen
	}

	seen.Put(start)
	q := queue.New[Position]()
	q.Enqueue(start)

	for !q.Empty() {
		cur := q.Dequeue()
		for _, d := range neighbors4 {
			next := cur.Add(d[0], d[1])
			if g.IsOpen(next) && !seen.Has(next) {
				seen.Put(next)
				q.Enqueue(next)
			}
		}
	}

	return seen
}

// CarveCorridor forces a 4-connected staircase of open cells from one position
// to another and returns the cells it visited, endpoints included.
//
// Each step moves one cell along the axis with the larger remaining distance
// (x on ties), so the path never leaves the bounding box of the two endpoints.
// Cells outside the grid are skipped.
func (g *Grid) CarveCorridor(from, to Position) []Position {
	path := []Position{from}
	g.Set(from, Open)

	cur := from
	for cur != to {
		dx, dy := to.X-cur.X, to.Y-cur.Y
		if abs(dx) >= abs(dy) {
			cur.X += sign(dx)
		} else {
			cur.Y += sign(dy)
		}
		g.Set(cur, Open)
		path = append(path, cur)
	}

	return path
}

func (g *Grid) passable(p Position, blocked mapset.Set[Position]) bool {
	return g.IsOpen(p) && !blocked.Has(p)
}

func (g *Grid) visitedMatrix() [][]bool {
	visited := make([][]bool, g.height)
	for y := range visited {
		visited[y] = make([]bool, g.width)
	}
	return visited
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
