package entity

import "github.com/samdwyer/superseed/internal/grid"

// Checkpoint keeps one in-memory save of the player.
type Checkpoint struct {
	saved *snapshot
}

type snapshot struct {
	area, scene int
	pos         grid.Position
	hp          int
	infection   int
	inventory   Inventory
}

// Save records the player's state and where they are.
func (c *Checkpoint) Save(p *Player, area, scene int) {
	c.saved = &snapshot{
		area:      area,
		scene:     scene,
		pos:       p.Pos,
		hp:        p.HP,
		infection: p.Infection,
		inventory: p.Inventory,
	}
}

// Load restores the saved state into p and returns where it was saved.
// ok is false when nothing has been saved.
func (c *Checkpoint) Load(p *Player) (area, scene int, ok bool) {
	if c.saved == nil {
		return 0, 0, false
	}
	s := c.saved
	p.Pos = s.pos
	p.HP = s.hp
	p.Infection = s.infection
	p.Inventory = s.inventory
	return s.area, s.scene, true
}

// Has reports whether a checkpoint has been saved.
func (c *Checkpoint) Has() bool {
	return c.saved != nil
}
