package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func TestNewBorderedRing(t *testing.T) {
	g := NewBordered(20, 13)

	g.ForEachCell(func(p Position, c Cell) {
		if g.IsBorder(p) {
			assert.Equal(t, Wall, c, "border cell %v", p)
		} else {
			assert.Equal(t, Open, c, "interior cell %v", p)
		}
	})
	assert.Equal(t, 18*11, g.CountOpen())
}

func TestFromRowsAndCells(t *testing.T) {
	rows := [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	g := FromRows(rows)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.True(t, g.IsOpen(Pos(1, 1)))
	assert.False(t, g.IsOpen(Pos(0, 1)))
	assert.Equal(t, rows, g.Cells())
	assert.Equal(t, "###\n#.#\n###\n", g.String())
}

func TestAtOutOfBoundsIsWall(t *testing.T) {
	g := New(3, 3)
	assert.Equal(t, Wall, g.At(Pos(-1, 0)))
	assert.Equal(t, Wall, g.At(Pos(3, 0)))
	assert.False(t, g.Set(Pos(0, 3), Open))
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(4, 4)
	c := g.Clone()
	c.Set(Pos(2, 2), Wall)

	assert.True(t, g.IsOpen(Pos(2, 2)))
	assert.False(t, c.IsOpen(Pos(2, 2)))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		a, b Position
		want int
	}{
		{
			name: "straight corridor",
			rows: [][]int{{0, 0, 0, 0}},
			a:    Pos(0, 0), b: Pos(3, 0),
			want: 3,
		},
		{
			name: "same cell",
			rows: [][]int{{0}},
			a:    Pos(0, 0), b: Pos(0, 0),
			want: 0,
		},
		{
			name: "detour around wall",
			rows: [][]int{
				{0, 1, 0},
				{0, 1, 0},
				{0, 0, 0},
			},
			a: Pos(0, 0), b: Pos(2, 0),
			want: 6,
		},
		{
			name: "walled off",
			rows: [][]int{
				{0, 1, 0},
				{0, 1, 0},
				{0, 1, 0},
			},
			a: Pos(0, 0), b: Pos(2, 2),
			want: Unreachable,
		},
		{
			name: "wall endpoint",
			rows: [][]int{{0, 1}},
			a:    Pos(0, 0), b: Pos(1, 0),
			want: Unreachable,
		},
		{
			name: "diagonal only is not connected",
			rows: [][]int{
				{0, 1},
				{1, 0},
			},
			a: Pos(0, 0), b: Pos(1, 1),
			want: Unreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FromRows(tt.rows)
			assert.Equal(t, tt.want, g.Distance(tt.a, tt.b))
			assert.Equal(t, tt.want != Unreachable, g.Connected(tt.a, tt.b))
		})
	}
}

func TestDistanceAvoidingDoesNotMutate(t *testing.T) {
	g := New(3, 3)
	blocked := mapset.New[Position]()
	blocked.Put(Pos(1, 0))
	blocked.Put(Pos(1, 1))
	blocked.Put(Pos(1, 2))

	assert.False(t, g.ConnectedAvoiding(Pos(0, 0), Pos(2, 0), blocked))
	assert.Equal(t, Unreachable, g.DistanceAvoiding(Pos(0, 0), Pos(2, 0), blocked))
	assert.True(t, g.Connected(Pos(0, 0), Pos(2, 0)), "overlay must not touch the grid")
	assert.Equal(t, 9, g.CountOpen())
}

func TestReachable(t *testing.T) {
	g := FromRows([][]int{
		{0, 0, 1, 0},
		{1, 0, 1, 0},
	})

	r := g.Reachable(Pos(0, 0))
	assert.Equal(t, 3, r.Size())
	assert.True(t, r.Has(Pos(1, 1)))
	assert.False(t, r.Has(Pos(3, 0)))

	assert.Equal(t, 0, g.Reachable(Pos(2, 0)).Size())
}

func TestCarveCorridorReconnects(t *testing.T) {
	// A solid wall column splits the interior in two.
	g := NewBordered(12, 9)
	for y := 1; y < 8; y++ {
		g.Set(Pos(6, y), Wall)
	}
	from, to := Pos(2, 2), Pos(10, 7)
	require.False(t, g.Connected(from, to))

	path := g.CarveCorridor(from, to)

	assert.True(t, g.Connected(from, to))
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	assert.Len(t, path, from.Manhattan(to)+1)
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]), "step %d is not 4-adjacent", i)
		assert.True(t, g.IsInterior(path[i]), "corridor left the interior at %v", path[i])
	}
}

func TestCarveCorridorAlwaysConnects(t *testing.T) {
	for fx := 1; fx < 7; fx++ {
		for ty := 1; ty < 5; ty++ {
			g := NewBordered(8, 6)
			for y := 1; y < 5; y++ {
				for x := 1; x < 7; x++ {
					g.Set(Pos(x, y), Wall)
				}
			}
			from, to := Pos(fx, 1), Pos(7-fx, ty)
			g.CarveCorridor(from, to)
			assert.True(t, g.Connected(from, to), "%v -> %v", from, to)
		}
	}
}

func TestSide(t *testing.T) {
	for _, s := range AllSides() {
		assert.Equal(t, s, s.Opposite().Opposite())
		dx, dy := s.Inward()
		ox, oy := s.Opposite().Inward()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
	assert.Equal(t, "unknown", Side(9).String())
}

func TestPositionMetrics(t *testing.T) {
	a, b := Pos(1, 1), Pos(4, 5)
	assert.Equal(t, 7, a.Manhattan(b))
	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.Equal(t, "(1,1)", a.String())
}
