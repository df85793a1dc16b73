package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/grid"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Ada")
	assert.Equal(t, "Ada", p.GetName())
	assert.Equal(t, 100, p.GetHP())
	assert.Equal(t, 100, p.GetMaxHP())
	assert.Equal(t, 50, p.Infection)
	assert.Equal(t, 10, p.AttackPower)
	assert.Equal(t, 5, p.RingDuration)
	assert.True(t, p.FacingRight)
	assert.True(t, p.IsAlive())
	assert.Equal(t, Inventory{}, p.Inventory)
}

func TestPlayerMove(t *testing.T) {
	r := newRoom(7, 7)
	r.g.Set(grid.Pos(3, 2), grid.Wall)

	tests := []struct {
		name   string
		start  grid.Position
		dx, dy int
		want   grid.Position
		moved  bool
	}{
		{"open step", grid.Pos(2, 2), 0, 1, grid.Pos(2, 3), true},
		{"into wall", grid.Pos(2, 2), 1, 0, grid.Pos(2, 2), false},
		{"slides along wall", grid.Pos(2, 2), 1, 1, grid.Pos(2, 3), true},
		{"border", grid.Pos(1, 1), -1, 0, grid.Pos(1, 1), false},
		{"onto doorway", grid.Pos(1, 3), -1, 0, grid.Pos(0, 3), true},
		{"off the grid", grid.Pos(0, 3), -1, 0, grid.Pos(0, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer("Ada")
			p.Pos = tt.start
			assert.Equal(t, tt.moved, p.Move(tt.dx, tt.dy, r))
			assert.Equal(t, tt.want, p.Pos)
		})
	}
}

func TestPlayerFacing(t *testing.T) {
	r := newRoom(7, 7)
	p := NewPlayer("Ada")
	p.Pos = grid.Pos(3, 3)

	p.Move(-1, 0, r)
	assert.False(t, p.FacingRight)
	p.Move(0, 1, r)
	assert.False(t, p.FacingRight)
	p.Move(1, 0, r)
	assert.True(t, p.FacingRight)
}

func TestUpdateInfection(t *testing.T) {
	p := NewPlayer("Ada")
	assert.False(t, p.UpdateInfection(10))
	assert.Equal(t, 60, p.Infection)

	assert.False(t, p.UpdateInfection(-100))
	assert.Equal(t, 0, p.Infection)

	p.Inventory.AddSword()
	assert.False(t, p.UpdateInfection(200))
	assert.Equal(t, 0, p.Infection)
	p.Infection = 30
	p.UpdateInfection(-10)
	assert.Equal(t, 30, p.Infection, "the sword halts infection changes both ways")

	p.Inventory.RemoveSword()
	assert.True(t, p.UpdateInfection(70))
}

func TestCollectFragment(t *testing.T) {
	p := NewPlayer("Ada")
	p.Infection = 80
	p.CollectFragment()
	assert.Equal(t, 1, p.Inventory.Fragments)
	assert.Equal(t, 0, p.Infection)

	p.Infection = 40
	p.CollectFragment()
	assert.Equal(t, 2, p.Inventory.Fragments)
	assert.Equal(t, 40, p.Infection)
}

func TestOptimismRing(t *testing.T) {
	p := NewPlayer("Ada")
	assert.Equal(t, 5, p.TakeDamage(5))

	assert.True(t, p.ActivateRing())
	assert.False(t, p.ActivateRing(), "ring already running")
	assert.Equal(t, 0, p.TakeDamage(50))
	assert.Equal(t, 95, p.HP)

	for i := 0; i < p.RingDuration; i++ {
		assert.True(t, p.Shielded(), "turn %d", i)
		p.Tick()
	}
	assert.False(t, p.RingActive())
	assert.Equal(t, 95, p.TakeDamage(500))
	assert.False(t, p.IsAlive())
}

func TestHeal(t *testing.T) {
	p := NewPlayer("Ada")
	p.HP = 90
	assert.Equal(t, 10, p.Heal(50))
	assert.Equal(t, 0, p.Heal(-1))
	assert.Equal(t, 100, p.HP)
}

func TestApplyUpgrade(t *testing.T) {
	data, err := gamedata.LoadNPCs()
	if err != nil {
		t.Fatal(err)
	}
	ring := data.Upgrade("ring_duration")
	attack := data.Upgrade("attack_power")
	ranged := data.Upgrade("ranged_attacks")

	p := NewPlayer("Ada")
	assert.False(t, p.ApplyUpgrade(ring), "cannot afford")
	assert.False(t, p.ApplyUpgrade(nil))

	p.Inventory.AddSupercollateral(50)
	assert.True(t, p.ApplyUpgrade(ring))
	assert.Equal(t, 10, p.RingDuration)
	assert.True(t, p.ApplyUpgrade(attack))
	assert.Equal(t, 15, p.AttackPower)
	assert.True(t, p.ApplyUpgrade(ranged))
	assert.Equal(t, 3, p.RangedAttacks)
	assert.Equal(t, 5, p.Inventory.Supercollateral)
}

func TestCheckpoint(t *testing.T) {
	var cp Checkpoint
	p := NewPlayer("Ada")
	_, _, ok := cp.Load(p)
	assert.False(t, ok)
	assert.False(t, cp.Has())

	p.Pos = grid.Pos(4, 5)
	p.HP = 70
	p.Infection = 20
	p.Inventory.AddSword()
	p.Inventory.AddSupercollateral(15)
	cp.Save(p, 2, 4)
	assert.True(t, cp.Has())

	p.Pos = grid.Pos(1, 1)
	p.HP = 10
	p.Infection = 90
	p.Inventory = Inventory{}

	area, scene, ok := cp.Load(p)
	assert.True(t, ok)
	assert.Equal(t, 2, area)
	assert.Equal(t, 4, scene)
	assert.Equal(t, grid.Pos(4, 5), p.Pos)
	assert.Equal(t, 70, p.HP)
	assert.Equal(t, 20, p.Infection)
	assert.Equal(t, Inventory{HasSword: true, Supercollateral: 15}, p.Inventory)
}

func TestInventorySpend(t *testing.T) {
	var inv Inventory
	inv.AddSupercollateral(5)
	assert.False(t, inv.SpendSupercollateral(10))
	assert.True(t, inv.SpendSupercollateral(5))
	assert.Equal(t, 0, inv.Supercollateral)
}
