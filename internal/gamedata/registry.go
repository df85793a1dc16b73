package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies []EnemyDef
	byID    map[string]int
	bosses  map[int]int // area -> index into enemies
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	r := &EnemyRegistry{
		enemies: enemies,
		byID:    make(map[string]int, len(enemies)),
		bosses:  make(map[int]int),
	}
	for i := range enemies {
		r.byID[enemies[i].ID] = i
		if enemies[i].IsBoss() {
			r.bosses[*enemies[i].BossOf] = i
		}
	}
	return r
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	r := NewEnemyRegistry(enemies)
	if err := r.checkReferences(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// checkReferences makes sure split and summon targets exist.
func (r *EnemyRegistry) checkReferences() error {
	for _, e := range r.enemies {
		if e.SplitsInto != "" && r.GetByID(e.SplitsInto) == nil {
			return fmt.Errorf("enemy %s splits into unknown enemy %q", e.ID, e.SplitsInto)
		}
		for _, a := range e.Attacks {
			if a.Kind == AttackSummon && r.GetByID(a.Summons) == nil {
				return fmt.Errorf("enemy %s summons unknown enemy %q", e.ID, a.Summons)
			}
		}
	}
	return nil
}

// SpawnRandom selects a roaming enemy using weighted probability, ignoring
// area and sword restrictions. Bosses never spawn this way.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	return r.pick(rng, func(*EnemyDef) bool { return true })
}

// SpawnFor selects a roaming enemy allowed in the given area. Enemies that
// require the sword are skipped unless hasSword is set.
func (r *EnemyRegistry) SpawnFor(rng *rand.Rand, area int, hasSword bool) *EnemyDef {
	return r.pick(rng, func(e *EnemyDef) bool {
		return area >= e.MinArea && (!e.RequiresSword || hasSword)
	})
}

func (r *EnemyRegistry) pick(rng *rand.Rand, allowed func(*EnemyDef) bool) *EnemyDef {
	total := 0
	for i := range r.enemies {
		e := &r.enemies[i]
		if !e.IsBoss() && e.SpawnWeight > 0 && allowed(e) {
			total += e.SpawnWeight
		}
	}
	if total <= 0 {
		return nil
	}

	roll := rng.Intn(total)
	for i := range r.enemies {
		e := &r.enemies[i]
		if e.IsBoss() || e.SpawnWeight <= 0 || !allowed(e) {
			continue
		}
		if roll < e.SpawnWeight {
			return e
		}
		roll -= e.SpawnWeight
	}
	return nil
}

// BossFor returns the boss guarding the area, or nil.
func (r *EnemyRegistry) BossFor(area int) *EnemyDef {
	i, ok := r.bosses[area]
	if !ok {
		return nil
	}
	return &r.enemies[i]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.enemies[i]
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}
