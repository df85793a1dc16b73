package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/superseed/internal/grid"
)

func TestShapeCells(t *testing.T) {
	c := grid.Pos(10, 6)

	tests := []struct {
		name    string
		shape   Shape
		arm     int
		variant int
		want    int
		absent  []grid.Position
		present []grid.Position
	}{
		{"plus arm 1", Plus, 1, 0, 5, nil, []grid.Position{c.Add(0, -1), c.Add(1, 0)}},
		{"plus arm 3", Plus, 3, 2, 13, nil, []grid.Position{c.Add(-3, 0), c.Add(0, 3)}},
		{"T without up arm", T, 2, 0, 7, []grid.Position{c.Add(0, -1), c.Add(0, -2)}, []grid.Position{c.Add(0, 2)}},
		{"T without right arm", T, 1, 3, 4, []grid.Position{c.Add(1, 0)}, []grid.Position{c.Add(-1, 0)}},
		{"L right down", L, 3, 0, 7, []grid.Position{c.Add(-1, 0), c.Add(0, -1)}, []grid.Position{c.Add(3, 0), c.Add(0, 3)}},
		{"L left up", L, 1, 3, 3, []grid.Position{c.Add(1, 0)}, []grid.Position{c.Add(-1, 0), c.Add(0, -1)}},
		{"arc down right", Arc, 2, 3, 5, []grid.Position{c.Add(0, -1)}, []grid.Position{c.Add(2, 0), c.Add(0, 2)}},
		{"arc zero arm", Arc, 0, 1, 1, []grid.Position{c.Add(1, 0)}, nil},
		{"negative variant wraps", T, 1, -1, 4, []grid.Position{c.Add(1, 0)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := ShapeCells(c, tt.arm, tt.shape, tt.variant)
			require.Len(t, cells, tt.want)
			assert.Equal(t, c, cells[0], "center comes first")
			for _, p := range tt.absent {
				assert.NotContains(t, cells, p)
			}
			for _, p := range tt.present {
				assert.Contains(t, cells, p)
			}
		})
	}
}

func TestClipInterior(t *testing.T) {
	g := grid.NewBordered(6, 6)
	cells := ShapeCells(grid.Pos(1, 1), 2, Plus, 0)

	clipped := clipInterior(g, cells)
	for _, p := range clipped {
		assert.True(t, g.IsInterior(p), "%v", p)
	}
	assert.Len(t, clipped, 5)
}

func TestPickShapeWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		assert.Equal(t, Arc, pickShape(rng, map[Shape]int{Arc: 3, Plus: 0}))
	}

	seen := map[Shape]int{}
	for i := 0; i < 400; i++ {
		seen[pickShape(rng, nil)]++
	}
	for _, s := range AllShapes() {
		assert.Greater(t, seen[s], 50, "uniform pick starved %s", s)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
		ok   bool
	}{
		{"plus", Plus, true},
		{"t", T, true},
		{"L", L, true},
		{"ARC", Arc, true},
		{"zigzag", Plus, false},
	}

	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}
}

func mustParse(t *testing.T, name string) Shape {
	t.Helper()
	s, err := ParseShape(name)
	require.NoError(t, err)
	return s
}
