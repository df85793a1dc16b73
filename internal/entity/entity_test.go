package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/grid"
)

// room is a bordered open grid with doorways on the left and right walls.
type room struct {
	g           *grid.Grid
	l           grid.Layout
	entry, exit grid.Position
}

func newRoom(w, h int) *room {
	r := &room{
		g:     grid.NewBordered(w, h),
		l:     grid.SquareLayout(40, 0),
		entry: grid.Pos(0, h/2),
		exit:  grid.Pos(w-1, h/2),
	}
	r.g.Set(r.entry, grid.Open)
	r.g.Set(r.exit, grid.Open)
	return r
}

func (r *room) Grid() *grid.Grid     { return r.g }
func (r *room) Entry() grid.Position { return r.entry }
func (r *room) Exit() grid.Position  { return r.exit }
func (r *room) Layout() grid.Layout  { return r.l }
func (r *room) Width() int           { return r.g.Width() }
func (r *room) Height() int          { return r.g.Height() }

func (r *room) Collides(rect grid.Rect) bool {
	lo, hi, ok := r.l.CellSpan(rect, r.g.Width(), r.g.Height())
	if !ok {
		return false
	}
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if !r.g.IsOpen(grid.Pos(x, y)) {
				return true
			}
		}
	}
	return false
}

func TestFootprint(t *testing.T) {
	l := grid.SquareLayout(40, 50)
	assert.Equal(t, grid.Rect{X: 40, Y: 90, W: 40, H: 40}, Footprint(l, grid.Pos(1, 1), 1))
	assert.Equal(t, grid.Rect{X: 40, Y: 90, W: 120, H: 120}, Footprint(l, grid.Pos(1, 1), 3))
	assert.Equal(t, Footprint(l, grid.Pos(2, 2), 1), Footprint(l, grid.Pos(2, 2), 0))
}

func TestPlaceAwayKeepsDistances(t *testing.T) {
	r := newRoom(20, 13)
	player := r.l.CellRect(grid.Pos(1, 6))
	ex, ey := r.l.PointForCell(r.entry)
	xx, xy := r.l.PointForCell(r.exit)

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, size := range []int{1, 2, 3} {
			p := PlaceAway(r, rng, size, player)
			rect := Footprint(r.l, p, size)
			require.False(t, r.Collides(rect), "seed %d size %d at %v", seed, size, p)
			assert.Greater(t, pixelDistance(rect.X, rect.Y, ex, ey), float64(MinDoorDistance))
			assert.Greater(t, pixelDistance(rect.X, rect.Y, xx, xy), float64(MinDoorDistance))
			assert.Greater(t, pixelDistance(rect.X, rect.Y, player.X, player.Y), float64(MinPlayerDistance))
		}
	}
}

func TestPlaceAwayFallback(t *testing.T) {
	// Every interior cell is within range of the player, so nothing qualifies.
	r := newRoom(5, 5)
	player := r.l.CellRect(grid.Pos(2, 2))
	p := PlaceAway(r, rand.New(rand.NewSource(1)), 1, player)
	assert.Equal(t, grid.Pos(1, 1), p)
}

func TestNewIDIsSeeded(t *testing.T) {
	a := NewID(rand.New(rand.NewSource(9)))
	b := NewID(rand.New(rand.NewSource(9)))
	c := NewID(rand.New(rand.NewSource(10)))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestItemKind(t *testing.T) {
	tests := []struct {
		kind   ItemKind
		name   string
		symbol rune
	}{
		{ItemToken, "token", '$'},
		{ItemCheckpoint, "checkpoint", '+'},
		{ItemSword, "sword", '/'},
		{ItemFragment, "fragment", '*'},
		{ItemKind(42), "unknown", '?'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.kind.String())
		assert.Equal(t, tt.symbol, tt.kind.Symbol())
	}
}

func TestPlaceNPC(t *testing.T) {
	r := newRoom(20, 13)
	player := r.l.CellRect(grid.Pos(1, 6))
	data, err := gamedata.LoadNPCs()
	require.NoError(t, err)

	always := data
	always.Spawn = gamedata.NPCSpawn{Chance: 100, Vendor: 100}
	npc, ok := PlaceNPC(r, rand.New(rand.NewSource(3)), &always, player)
	require.True(t, ok)
	assert.Equal(t, gamedata.NPCVendor, npc.Kind)
	assert.Equal(t, 'V', npc.Symbol())
	assert.Equal(t, "Vendor", npc.Title())
	assert.Len(t, npc.Upgrades, len(data.Upgrades))
	assert.NotEmpty(t, npc.Lore)
	assert.False(t, r.Collides(npc.Rect(r.l)))

	never := data
	never.Spawn = gamedata.NPCSpawn{Chance: 0}
	_, ok = PlaceNPC(r, rand.New(rand.NewSource(3)), &never, player)
	assert.False(t, ok)

	scholar := NewNPC(gamedata.NPCScholar, grid.Pos(3, 3), &data, rand.New(rand.NewSource(1)))
	assert.Empty(t, scholar.Upgrades)
	assert.Len(t, scholar.Lore, 1)
}
