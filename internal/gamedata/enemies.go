package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Movement is how an enemy walks the maze each turn.
type Movement string

const (
	MoveWander   Movement = "wander"   // straight line, new random direction on collision
	MoveDiagonal Movement = "diagonal" // diagonal line, new random diagonal on collision
	MoveChase    Movement = "chase"    // steps toward the player on both axes
	MoveDash     Movement = "dash"     // wanders, then lunges toward the player on cooldown
)

// AttackKind is what an enemy attack does.
type AttackKind string

const (
	AttackContact AttackKind = "contact" // damages the player on overlap
	AttackRanged  AttackKind = "ranged"  // damages the player in a straight line within range
	AttackSweep   AttackKind = "sweep"   // damages the player anywhere within range
	AttackSummon  AttackKind = "summon"  // spawns minions next to the enemy
)

// AttackDef is one attack in an enemy's repertoire.
//
// An attack is active while the enemy's HP is above HPAbove and, when
// HPAtMost is non-zero, no more than HPAtMost. This is how multi-phase
// bosses switch attacks as they weaken.
type AttackDef struct {
	Kind     AttackKind `json:"kind"`
	Damage   int        `json:"damage,omitempty"`
	Range    int        `json:"range,omitempty"`    // in cells
	Cooldown int        `json:"cooldown,omitempty"` // in turns
	Summons  string     `json:"summons,omitempty"`  // enemy ID for summon attacks
	Count    int        `json:"count,omitempty"`    // minions per summon
	HPAbove  int        `json:"hpAbove,omitempty"`
	HPAtMost int        `json:"hpAtMost,omitempty"`
}

// ActiveAt reports whether the attack is usable at the given HP.
func (a *AttackDef) ActiveAt(hp int) bool {
	if hp <= a.HPAbove {
		return false
	}
	return a.HPAtMost == 0 || hp <= a.HPAtMost
}

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID            string      `json:"id"`                      // Unique identifier (e.g., "sapa")
	Name          string      `json:"name"`                    // Display name (e.g., "Sapa")
	Glyph         string      `json:"glyph"`                   // Single character for rendering
	Color         string      `json:"color"`                   // Hex color code
	HP            int         `json:"hp"`                      // Base hit points
	Size          int         `json:"size"`                    // Footprint in cells (square)
	Movement      Movement    `json:"movement"`                // Walking pattern
	Attacks       []AttackDef `json:"attacks"`                 // Repertoire, checked in order
	SpawnWeight   int         `json:"spawnWeight"`             // Relative roaming spawn frequency
	MinArea       int         `json:"minArea"`                 // First area this enemy roams in
	RequiresSword bool        `json:"requiresSword,omitempty"` // Only roams once the player carries the sword
	SplitsInto    string      `json:"splitsInto,omitempty"`    // Enemy ID spawned on death
	Splits        int         `json:"splits,omitempty"`        // How many are spawned on death
	BossOf        *int        `json:"bossOf,omitempty"`        // Area whose boss scene this enemy guards
}

// IsBoss reports whether the enemy guards an area's boss scene.
func (e *EnemyDef) IsBoss() bool {
	return e.BossOf != nil
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return colorOr(e.Color, tcell.ColorRed)
}

// Footprint returns the enemy's size in cells, at least one.
func (e *EnemyDef) Footprint() int {
	return max(e.Size, 1)
}

// validate checks the fields the game relies on.
func (e *EnemyDef) validate() error {
	if e.ID == "" {
		return fmt.Errorf("enemy without id")
	}
	if e.HP <= 0 {
		return fmt.Errorf("enemy %s: hp must be positive", e.ID)
	}
	switch e.Movement {
	case MoveWander, MoveDiagonal, MoveChase, MoveDash:
	default:
		return fmt.Errorf("enemy %s: unknown movement %q", e.ID, e.Movement)
	}
	for i, a := range e.Attacks {
		switch a.Kind {
		case AttackContact, AttackRanged, AttackSweep:
		case AttackSummon:
			if a.Summons == "" || a.Count <= 0 {
				return fmt.Errorf("enemy %s: summon attack %d needs summons and count", e.ID, i)
			}
		default:
			return fmt.Errorf("enemy %s: unknown attack kind %q", e.ID, a.Kind)
		}
	}
	return nil
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Enemies {
		if err := file.Enemies[i].validate(); err != nil {
			return nil, fmt.Errorf("enemies.json: %w", err)
		}
	}
	return file.Enemies, nil
}

// MustLoadEnemies loads enemy definitions, panicking on error.
func MustLoadEnemies() []EnemyDef {
	enemies, err := LoadEnemies()
	if err != nil {
		panic(err)
	}
	return enemies
}
