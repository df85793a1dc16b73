package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/superseed/internal/combat"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/grid"
)

// Turns between lunges for dashing enemies, and cells covered per lunge.
const (
	dashInterval = 4
	dashLength   = 2
)

var (
	cardinals = []grid.Position{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	diagonals = []grid.Position{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}
)

// Enemy represents a hostile creature in a scene.
type Enemy struct {
	ID     uuid.UUID
	Def    *gamedata.EnemyDef
	Name   string
	Symbol rune
	Pos    grid.Position // top-left cell of the footprint
	HP     int
	MaxHP  int

	dir       grid.Position
	cooldowns []combat.Cooldown // one per Def.Attacks entry
	dash      combat.Cooldown
}

// Action is an attack an enemy performs on its turn.
type Action struct {
	Kind    gamedata.AttackKind
	Damage  int
	Summons string
	Count   int
}

// NewEnemy creates an enemy from a definition at pos.
func NewEnemy(def *gamedata.EnemyDef, pos grid.Position, rng *rand.Rand) *Enemy {
	e := &Enemy{
		ID:        NewID(rng),
		Def:       def,
		Name:      def.Name,
		Symbol:    def.GlyphRune(),
		Pos:       pos,
		HP:        def.HP,
		MaxHP:     def.HP,
		cooldowns: make([]combat.Cooldown, len(def.Attacks)),
		dash:      combat.NewCooldown(dashInterval),
	}
	for i, a := range def.Attacks {
		e.cooldowns[i] = combat.NewCooldown(a.Cooldown)
	}
	e.pickDirection(rng)
	return e
}

// PlaceEnemy creates an enemy away from the doorways and the player.
func PlaceEnemy(t Terrain, rng *rand.Rand, def *gamedata.EnemyDef, player grid.Rect) *Enemy {
	pos := PlaceAway(t, rng, def.Footprint(), player)
	return NewEnemy(def, pos, rng)
}

// Size returns the footprint side in cells.
func (e *Enemy) Size() int { return e.Def.Footprint() }

// Rect returns the enemy's pixel rectangle.
func (e *Enemy) Rect(l grid.Layout) grid.Rect {
	return Footprint(l, e.Pos, e.Size())
}

// Occupies reports whether the enemy's footprint covers cell p.
func (e *Enemy) Occupies(p grid.Position) bool {
	return combat.Reach(e.Pos, e.Size(), p) == 0
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color { return e.Def.TCellColor() }

// IsBoss reports whether the enemy guards a boss scene.
func (e *Enemy) IsBoss() bool { return e.Def.IsBoss() }

// Step moves the enemy one turn according to its movement pattern. target is
// the player's cell. Reports whether the enemy moved.
func (e *Enemy) Step(t Terrain, rng *rand.Rand, target grid.Position) bool {
	switch e.Def.Movement {
	case gamedata.MoveChase:
		return e.approach(t, target)
	case gamedata.MoveDash:
		e.dash.Tick()
		if e.dash.Ready() {
			e.dash.Trigger()
			moved := false
			for i := 0; i < dashLength; i++ {
				if e.approach(t, target) {
					moved = true
				}
			}
			return moved
		}
		return e.walk(t, rng)
	default:
		return e.walk(t, rng)
	}
}

// walk continues in the current direction and picks a new one on collision.
func (e *Enemy) walk(t Terrain, rng *rand.Rand) bool {
	next := e.Pos.Add(e.dir.X, e.dir.Y)
	if canOccupy(t, next, e.Size()) {
		e.Pos = next
		return true
	}
	e.pickDirection(rng)
	return false
}

// approach steps toward target, each axis separately.
func (e *Enemy) approach(t Terrain, target grid.Position) bool {
	moved := false
	if dx := sign(target.X - e.Pos.X); dx != 0 && canOccupy(t, e.Pos.Add(dx, 0), e.Size()) {
		e.Pos = e.Pos.Add(dx, 0)
		moved = true
	}
	if dy := sign(target.Y - e.Pos.Y); dy != 0 && canOccupy(t, e.Pos.Add(0, dy), e.Size()) {
		e.Pos = e.Pos.Add(0, dy)
		moved = true
	}
	return moved
}

func (e *Enemy) pickDirection(rng *rand.Rand) {
	dirs := cardinals
	if e.Def.Movement == gamedata.MoveDiagonal {
		dirs = diagonals
	}
	e.dir = dirs[rng.Intn(len(dirs))]
}

// Act ticks the attack cooldowns and returns the first ready attack that
// connects with the player at target. Attacks are tried in definition order.
func (e *Enemy) Act(t Terrain, target grid.Position) (Action, bool) {
	for i := range e.cooldowns {
		e.cooldowns[i].Tick()
	}
	for i := range e.Def.Attacks {
		a := &e.Def.Attacks[i]
		if !a.ActiveAt(e.HP) || !e.cooldowns[i].Ready() || !e.connects(t, a, target) {
			continue
		}
		e.cooldowns[i].Trigger()
		return Action{Kind: a.Kind, Damage: a.Damage, Summons: a.Summons, Count: a.Count}, true
	}
	return Action{}, false
}

func (e *Enemy) connects(t Terrain, a *gamedata.AttackDef, target grid.Position) bool {
	switch a.Kind {
	case gamedata.AttackContact:
		return e.Occupies(target)
	case gamedata.AttackSweep:
		return combat.Reach(e.Pos, e.Size(), target) <= a.Range
	case gamedata.AttackRanged:
		return combat.FootprintSight(t.Grid(), e.Pos, e.Size(), target, a.Range)
	case gamedata.AttackSummon:
		return true
	default:
		return false
	}
}

// Splits returns the enemy ID spawned when this enemy dies and how many.
func (e *Enemy) Splits() (string, int) {
	return e.Def.SplitsInto, e.Def.Splits
}

// GetName returns the enemy's display name.
func (e *Enemy) GetName() string { return e.Name }

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum HP.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, e.HP)
	e.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (e *Enemy) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, e.MaxHP-e.HP)
	e.HP += actual
	return actual
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

var _ combat.Combatant = (*Enemy)(nil)
