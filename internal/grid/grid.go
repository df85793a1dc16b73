package grid

// Grid is a width x height array of cells indexed as [y][x].
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a grid with every cell open.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("grid dimensions must be positive")
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewBordered creates an open grid whose outer ring is wall.
func NewBordered(width, height int) *Grid {
	g := New(width, height)
	for x := 0; x < width; x++ {
		g.cells[0][x] = Wall
		g.cells[height-1][x] = Wall
	}
	for y := 0; y < height; y++ {
		g.cells[y][0] = Wall
		g.cells[y][width-1] = Wall
	}
	return g
}

// FromRows builds a grid from rows of 0/1 values. Rows shorter than the first are padded with wall.
func FromRows(rows [][]int) *Grid {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("grid rows must not be empty")
	}
	g := New(len(rows[0]), len(rows))
	for y := range g.cells {
		for x := range g.cells[y] {
			if x >= len(rows[y]) || rows[y][x] != 0 {
				g.cells[y][x] = Wall
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a position is within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsInterior checks if a position is strictly inside the border ring.
func (g *Grid) IsInterior(p Position) bool {
	return p.X > 0 && p.X < g.width-1 && p.Y > 0 && p.Y < g.height-1
}

// IsBorder checks if a position lies on the outer ring.
func (g *Grid) IsBorder(p Position) bool {
	return g.InBounds(p) && !g.IsInterior(p)
}

// At returns the cell at the given position. Out of bounds reads as wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// IsOpen returns true if the position is in bounds and open.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p) == Open
}

// Set changes the cell at the given position. Returns false if out of bounds.
func (g *Grid) Set(p Position, c Cell) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y][p.X] = c
	return true
}

// SetAll sets every listed position to the given cell.
func (g *Grid) SetAll(ps []Position, c Cell) {
	for _, p := range ps {
		g.Set(p, c)
	}
}

// Cells returns a copy of the grid as rows of 0 (open) and 1 (wall).
func (g *Grid) Cells() [][]int {
	rows := make([][]int, g.height)
	for y := range g.cells {
		rows[y] = make([]int, g.width)
		for x, c := range g.cells[y] {
			rows[y][x] = int(c)
		}
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.width, g.height)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// ForEachCell iterates over all cells in row-major order.
func (g *Grid) ForEachCell(fn func(p Position, c Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Position{X: x, Y: y}, g.cells[y][x])
		}
	}
}

// CountOpen returns the number of open cells.
func (g *Grid) CountOpen() int {
	n := 0
	g.ForEachCell(func(_ Position, c Cell) {
		if c == Open {
			n++
		}
	})
	return n
}

// String renders the grid with one rune per cell and a newline per row.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y := range g.cells {
		for _, c := range g.cells[y] {
			buf = append(buf, c.Rune())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
