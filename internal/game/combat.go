package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/superseed/internal/combat"
	"github.com/samdwyer/superseed/internal/entity"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/telemetry"
	"github.com/samdwyer/superseed/internal/world"
)

// Swing attacks with the sword in the facing direction. Without the sword it
// only prints a hint and takes no turn.
func (s *Session) Swing(ctx context.Context) {
	if s.state != StateExplore {
		return
	}
	if !s.player.Inventory.HasSword {
		s.say("You need the Sword of Solvency to fight.")
		return
	}

	scene := s.world.Scene()
	hit := map[*entity.Enemy]bool{}
	for _, c := range combat.SwingCells(s.player.Pos, s.player.FacingRight) {
		for _, e := range scene.Creatures() {
			if !hit[e] && e.Occupies(c) {
				hit[e] = true
				s.strike(ctx, e, s.player.AttackPower)
			}
		}
	}
	if len(hit) == 0 {
		s.say("Your swing cuts only air.")
	}
	s.endTurn(ctx)
}

// Shoot fires a ranged attack along the facing row, hitting the first
// creature before a wall.
func (s *Session) Shoot(ctx context.Context) {
	if s.state != StateExplore {
		return
	}
	if s.player.RangedAttacks <= 0 {
		s.say("You have no ranged attacks left.")
		return
	}
	s.player.RangedAttacks--

	scene := s.world.Scene()
	g := scene.Maze.Grid()
	dx := -1
	if s.player.FacingRight {
		dx = 1
	}
	var target *entity.Enemy
	for p, i := s.player.Pos.Add(dx, 0), 0; i < ShotRange && g.IsOpen(p); p, i = p.Add(dx, 0), i+1 {
		if target = scene.EnemyAt(p); target != nil {
			break
		}
	}
	if target == nil {
		s.say("Your shot hits nothing.")
	} else {
		s.strike(ctx, target, s.player.AttackPower)
	}
	s.endTurn(ctx)
}

func (s *Session) strike(ctx context.Context, e *entity.Enemy, power int) {
	res := s.resolver.Resolve(ctx, s.player, e, power)
	s.say(res.Message)
	if res.Killed {
		s.defeat(e)
	}
}

// defeat removes a dead enemy and spawns whatever it splits into.
func (s *Session) defeat(e *entity.Enemy) {
	scene := s.world.Scene()
	scene.RemoveEnemy(e)
	if id, n := e.Splits(); id != "" && n > 0 {
		if spawned := scene.Summon(id, n, e.Pos); len(spawned) > 0 {
			s.say(fmt.Sprintf("%s splits into %d!", e.Name, len(spawned)))
		}
	}
	if e.IsBoss() {
		s.log.Info("boss defeated", "boss", e.Def.ID, "area", s.world.CurrentArea, "turn", s.turn)
	}
}

// enemyTurns moves every creature in the scene and lets it attack.
func (s *Session) enemyTurns(ctx context.Context, scene *world.Scene) {
	ctx, span := telemetry.Tracer("combat").Start(ctx, "combat.enemy_turns")
	defer span.End()

	creatures := scene.Creatures()
	attacks, damage := 0, 0
	for _, e := range creatures {
		if !e.IsAlive() {
			continue
		}
		e.Step(scene.Maze, s.rng, s.player.Pos)
		a, ok := e.Act(scene.Maze, s.player.Pos)
		if !ok {
			continue
		}
		attacks++

		if a.Kind == gamedata.AttackSummon {
			if spawned := scene.Summon(a.Summons, a.Count, e.Pos); len(spawned) > 0 {
				s.say(fmt.Sprintf("%s summons %d minions!", e.Name, len(spawned)))
			}
			continue
		}

		res := s.resolver.Resolve(ctx, e, s.player, a.Damage)
		damage += res.Damage
		s.say(res.Message)
		if !s.player.IsAlive() {
			s.gameOver("You have fallen.")
			break
		}
	}

	span.SetAttributes(
		attribute.Int("combat.creatures", len(creatures)),
		attribute.Int("combat.attacks", attacks),
		attribute.Int("combat.damage_taken", damage),
		attribute.Int("player.hp", s.player.HP),
	)
}
