package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayoutRoundTrip(t *testing.T) {
	for _, rows := range []int{9, 13, 15, 20} {
		l := DefaultLayout(rows)
		for y := 0; y < rows; y++ {
			for x := 0; x < 20; x++ {
				p := Pos(x, y)
				px, py := l.PointForCell(p)
				assert.Equal(t, p, l.CellForPoint(px, py), "rows=%d cell %v", rows, p)
			}
		}
	}
}

func TestCellRectStaysInsideCell(t *testing.T) {
	l := DefaultLayout(13)
	for y := 0; y < 13; y++ {
		p := Pos(3, y)
		r := l.CellRect(p)
		lo, hi, ok := l.CellSpan(r, 20, 13)
		assert.True(t, ok)
		assert.Equal(t, p, lo)
		assert.Equal(t, p, hi)
	}
}

func TestCellForPoint(t *testing.T) {
	l := SquareLayout(40, 50)

	tests := []struct {
		name   string
		px, py int
		want   Position
	}{
		{"origin below hud", 0, 50, Pos(0, 0)},
		{"inside first cell", 39, 89, Pos(0, 0)},
		{"next cell", 40, 90, Pos(1, 1)},
		{"inside hud", 10, 10, Pos(0, -1)},
		{"left of grid", -1, 60, Pos(-1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.CellForPoint(tt.px, tt.py))
		})
	}
}

func TestCellSpan(t *testing.T) {
	l := SquareLayout(10, 0)

	tests := []struct {
		name   string
		r      Rect
		lo, hi Position
		ok     bool
	}{
		{"single cell", Rect{X: 10, Y: 10, W: 10, H: 10}, Pos(1, 1), Pos(1, 1), true},
		{"straddles four", Rect{X: 15, Y: 15, W: 10, H: 10}, Pos(1, 1), Pos(2, 2), true},
		{"clamped", Rect{X: -5, Y: -5, W: 20, H: 20}, Pos(0, 0), Pos(1, 1), true},
		{"off grid", Rect{X: 500, Y: 0, W: 10, H: 10}, Position{}, Position{}, false},
		{"empty", Rect{X: 0, Y: 0, W: 0, H: 10}, Position{}, Position{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := l.CellSpan(tt.r, 5, 5)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.lo, lo)
				assert.Equal(t, tt.hi, hi)
			}
		})
	}
}

func TestClampCell(t *testing.T) {
	l := SquareLayout(10, 0)
	assert.Equal(t, Pos(4, 0), l.ClampCell(999, -20, 5, 5))
	assert.Equal(t, Pos(0, 4), l.ClampCell(-1, 45, 5, 5))
}

func TestRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 4, H: 4}
	b := Rect{X: 3, Y: 3, W: 2, H: 2}
	c := Rect{X: 4, Y: 0, W: 2, H: 2}

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
	assert.True(t, a.Contains(3, 3))
	assert.False(t, a.Contains(4, 0))
}
