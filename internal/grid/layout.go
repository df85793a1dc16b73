package grid

import "math"

// Screen geometry the default layout is derived from.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TileSize     = 40
	HUDHeight    = 50
)

// Layout maps pixel coordinates to grid cells.
//
// Columns are TileWidth pixels wide. Rows are TileHeight pixels tall, which
// need not be an integer: the playable height below the HUD is stretched to
// fit the grid's row count.
type Layout struct {
	TileWidth  int
	TileHeight float64
	HUDOffset  int
}

// DefaultLayout fits a grid of the given row count below the HUD.
func DefaultLayout(rows int) Layout {
	return Layout{
		TileWidth:  TileSize,
		TileHeight: float64(ScreenHeight-HUDHeight) / float64(rows),
		HUDOffset:  HUDHeight,
	}
}

// SquareLayout uses tiles of equal width and height.
func SquareLayout(tile, hudOffset int) Layout {
	return Layout{TileWidth: tile, TileHeight: float64(tile), HUDOffset: hudOffset}
}

// CellForPoint returns the cell containing the pixel. The result is not clamped.
func (l Layout) CellForPoint(px, py int) Position {
	return Position{
		X: floorDiv(px, l.TileWidth),
		Y: int(math.Floor(float64(py-l.HUDOffset) / l.TileHeight)),
	}
}

// PointForCell returns the top-left pixel of the cell.
// Rows are rounded up so the pixel maps back to the same cell.
func (l Layout) PointForCell(p Position) (int, int) {
	return p.X * l.TileWidth, l.HUDOffset + int(math.Ceil(float64(p.Y)*l.TileHeight))
}

// CellRect returns a rectangle anchored at PointForCell that lies fully inside the cell.
func (l Layout) CellRect(p Position) Rect {
	x, y := l.PointForCell(p)
	return Rect{X: x, Y: y, W: l.TileWidth, H: l.rowPixels()}
}

// EntityRect returns a one-tile rectangle for an entity placed at the given pixel.
func (l Layout) EntityRect(px, py int) Rect {
	return Rect{X: px, Y: py, W: l.TileWidth, H: l.rowPixels()}
}

// CellSpan returns the inclusive range of cells a rectangle overlaps, clamped to a
// width x height grid. ok is false for an empty rectangle or one entirely off the grid.
func (l Layout) CellSpan(r Rect, width, height int) (lo, hi Position, ok bool) {
	if r.W <= 0 || r.H <= 0 {
		return lo, hi, false
	}

	lo = l.CellForPoint(r.X, r.Y)
	hi = l.CellForPoint(r.X+r.W-1, r.Y+r.H-1)
	if hi.X < 0 || hi.Y < 0 || lo.X >= width || lo.Y >= height {
		return lo, hi, false
	}

	lo.X, lo.Y = clamp(lo.X, 0, width-1), clamp(lo.Y, 0, height-1)
	hi.X, hi.Y = clamp(hi.X, 0, width-1), clamp(hi.Y, 0, height-1)
	return lo, hi, true
}

// ClampCell returns the cell containing the pixel, clamped to a width x height grid.
func (l Layout) ClampCell(px, py, width, height int) Position {
	p := l.CellForPoint(px, py)
	return Position{X: clamp(p.X, 0, width-1), Y: clamp(p.Y, 0, height-1)}
}

func (l Layout) rowPixels() int {
	h := int(math.Floor(l.TileHeight))
	if h < 1 {
		return 1
	}
	return h
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
