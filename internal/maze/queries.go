package maze

import (
	"github.com/samdwyer/superseed/internal/grid"
)

// Collides reports whether a pixel rectangle overlaps any wall cell.
// Rectangles entirely off the grid never collide.
func (m *Maze) Collides(r grid.Rect) bool {
	lo, hi, ok := m.layout.CellSpan(r, m.cfg.Width, m.cfg.Height)
	if !ok {
		return false
	}
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if !m.grid.IsOpen(grid.Pos(x, y)) {
				return true
			}
		}
	}
	return false
}

// FindOpenStartCell picks a random open interior cell within StartSearchRadius
// of the entry that can walk to the entry. Cells sealed off by obstacles are
// skipped. It falls back to the cell inside the entry, then the entry itself.
func (m *Maze) FindOpenStartCell() grid.Position {
	r := m.cfg.StartSearchRadius
	x0, x1 := max(1, m.entry.X-r), min(m.cfg.Width-2, m.entry.X+r)
	y0, y1 := max(1, m.entry.Y-r), min(m.cfg.Height-2, m.entry.Y+r)
	reachable := m.grid.Reachable(m.entry)

	for i := 0; i < m.cfg.PositionAttempts; i++ {
		p := grid.Pos(x0+m.rng.Intn(x1-x0+1), y0+m.rng.Intn(y1-y0+1))
		if reachable.Has(p) {
			return p
		}
	}

	inside := m.entry.Add(m.entrySide.Inward())
	if m.grid.IsOpen(inside) {
		return inside
	}
	m.log.Info("no open start cell near entry, using entry", "entry", m.entry.String())
	return m.entry
}

// FindOpenStartPosition is FindOpenStartCell in pixels.
func (m *Maze) FindOpenStartPosition() (int, int) {
	return m.layout.PointForCell(m.FindOpenStartCell())
}

// FindOpenCell picks a random open interior cell farther than MinItemDistance
// from both the entry and the exit. When the attempts run out it scans the
// interior in row-major order, first honouring the distance rule and then
// ignoring it, and finally returns (1,1).
func (m *Maze) FindOpenCell() grid.Position {
	for i := 0; i < m.cfg.PositionAttempts; i++ {
		p := grid.Pos(1+m.rng.Intn(m.cfg.Width-2), 1+m.rng.Intn(m.cfg.Height-2))
		if m.grid.IsOpen(p) && m.farFromDoors(p) {
			return p
		}
	}

	m.log.V(1).Info("random open cell search exhausted", "attempts", m.cfg.PositionAttempts)

	var firstOpen *grid.Position
	for y := 1; y < m.cfg.Height-1; y++ {
		for x := 1; x < m.cfg.Width-1; x++ {
			p := grid.Pos(x, y)
			if !m.grid.IsOpen(p) {
				continue
			}
			if m.farFromDoors(p) {
				return p
			}
			if firstOpen == nil {
				firstOpen = &p
			}
		}
	}
	if firstOpen != nil {
		return *firstOpen
	}
	return grid.Pos(1, 1)
}

// FindOpenPosition is FindOpenCell in pixels.
func (m *Maze) FindOpenPosition() (int, int) {
	return m.layout.PointForCell(m.FindOpenCell())
}

func (m *Maze) farFromDoors(p grid.Position) bool {
	return p.Distance(m.entry) > m.cfg.MinItemDistance && p.Distance(m.exit) > m.cfg.MinItemDistance
}

// Opening returns the two border cells carved for the doorway at door on the
// given side. The doorway itself is the second cell.
func Opening(door grid.Position, side grid.Side) [2]grid.Position {
	if side == grid.Top || side == grid.Bottom {
		return [2]grid.Position{door.Add(-1, 0), door}
	}
	return [2]grid.Position{door.Add(0, -1), door}
}
