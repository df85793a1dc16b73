package entity

import (
	"github.com/samdwyer/superseed/internal/combat"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/grid"
)

// Player defaults.
const (
	DefaultHP           = 100
	DefaultInfection    = 50
	DefaultAttackPower  = 10
	DefaultRingDuration = 5 // turns
	MaxInfection        = 100
)

// Player is the character the user controls.
type Player struct {
	Name   string
	Symbol rune
	Pos    grid.Position

	HP, MaxHP     int
	Infection     int
	AttackPower   int
	RangedAttacks int
	RingDuration  int
	FacingRight   bool
	Inventory     Inventory

	ringTimer int
}

// NewPlayer creates a player with the starting stats.
func NewPlayer(name string) *Player {
	return &Player{
		Name:         name,
		Symbol:       '@',
		HP:           DefaultHP,
		MaxHP:        DefaultHP,
		Infection:    DefaultInfection,
		AttackPower:  DefaultAttackPower,
		RingDuration: DefaultRingDuration,
		FacingRight:  true,
	}
}

// Rect returns the player's pixel rectangle.
func (p *Player) Rect(l grid.Layout) grid.Rect {
	return l.CellRect(p.Pos)
}

// Move steps the player one cell. Each axis is tried separately, so a
// diagonal move slides along walls. Reports whether the player moved.
func (p *Player) Move(dx, dy int, t Terrain) bool {
	if dx < 0 {
		p.FacingRight = false
	} else if dx > 0 {
		p.FacingRight = true
	}

	moved := false
	if next := p.Pos.Add(dx, 0); dx != 0 && canOccupy(t, next, 1) {
		p.Pos = next
		moved = true
	}
	if next := p.Pos.Add(0, dy); dy != 0 && canOccupy(t, next, 1) {
		p.Pos = next
		moved = true
	}
	return moved
}

// UpdateInfection changes the infection level. The sword halts infection in
// both directions. Reports true when the infection is terminal.
func (p *Player) UpdateInfection(delta int) bool {
	if p.Inventory.HasSword {
		delta = 0
	}
	p.Infection += delta
	if p.Infection >= MaxInfection {
		return true
	}
	if p.Infection < 0 {
		p.Infection = 0
	}
	return false
}

// CollectFragment adds a fragment. The first fragment cures the infection.
func (p *Player) CollectFragment() {
	p.Inventory.AddFragment()
	if p.Inventory.Fragments == 1 {
		p.Infection = 0
	}
}

// ActivateRing starts the Optimism Ring if it is not already running.
func (p *Player) ActivateRing() bool {
	if p.ringTimer > 0 {
		return false
	}
	p.ringTimer = p.RingDuration
	return true
}

// RingActive reports whether the Optimism Ring is protecting the player.
func (p *Player) RingActive() bool {
	return p.ringTimer > 0
}

// Tick advances per-turn timers.
func (p *Player) Tick() {
	if p.ringTimer > 0 {
		p.ringTimer--
	}
}

// ApplyUpgrade buys an upgrade with supercollateral.
func (p *Player) ApplyUpgrade(u *gamedata.UpgradeDef) bool {
	if u == nil || !p.Inventory.SpendSupercollateral(u.Cost) {
		return false
	}
	switch u.Effect {
	case gamedata.UpgradeRingDuration:
		p.RingDuration += u.Value
	case gamedata.UpgradeAttackPower:
		p.AttackPower += u.Value
	case gamedata.UpgradeRanged:
		p.RangedAttacks += u.Value
	}
	return true
}

// Reset restores the starting stats and empties the inventory.
func (p *Player) Reset() {
	name, pos := p.Name, p.Pos
	*p = *NewPlayer(name)
	p.Pos = pos
}

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum HP.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// Shielded reports whether incoming damage is blocked.
func (p *Player) Shielded() bool { return p.RingActive() }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 || p.Shielded() {
		return 0
	}
	actual := min(amount, p.HP)
	p.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.MaxHP-p.HP)
	p.HP += actual
	return actual
}

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)
