// Package combat provides the arcade combat rules: strikes, cooldowns and
// attack reach on the maze grid.
package combat

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/superseed/internal/telemetry"
)

// Combatant is the interface for any entity that can take part in a fight.
// The player and enemies implement it.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetMaxHP() int

	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// Result is the outcome of a single strike.
type Result struct {
	Attacker string
	Target   string
	Damage   int  // Damage actually dealt
	Blocked  bool // The target was shielded or already down
	Killed   bool // The strike took the target to zero HP
	Message  string
}

// Strike applies power damage from attacker to target.
func Strike(attacker, target Combatant, power int) Result {
	res := Result{Attacker: attacker.GetName(), Target: target.GetName()}
	if !target.IsAlive() {
		res.Blocked = true
		res.Message = target.GetName() + " is already down."
		return res
	}

	res.Damage = target.TakeDamage(power)
	switch {
	case res.Damage == 0 && power > 0:
		res.Blocked = true
		res.Message = fmt.Sprintf("%s's attack is blocked by %s!", attacker.GetName(), target.GetName())
	case !target.IsAlive():
		res.Killed = true
		res.Message = fmt.Sprintf("%s defeats %s!", attacker.GetName(), target.GetName())
	default:
		res.Message = fmt.Sprintf("%s hits %s for %d.", attacker.GetName(), target.GetName(), res.Damage)
	}
	return res
}

// Resolver applies strikes with tracing and logging.
type Resolver struct {
	log logr.Logger
}

// NewResolver creates a resolver logging to log.
func NewResolver(log logr.Logger) *Resolver {
	return &Resolver{log: log.WithName("combat")}
}

// Resolve applies a strike and records it.
func (r *Resolver) Resolve(ctx context.Context, attacker, target Combatant, power int) Result {
	_, span := telemetry.Tracer("combat").Start(ctx, "combat.strike")
	defer span.End()

	res := Strike(attacker, target, power)
	span.SetAttributes(
		attribute.String("combat.attacker", res.Attacker),
		attribute.String("combat.target", res.Target),
		attribute.Int("combat.power", power),
		attribute.Int("combat.damage", res.Damage),
		attribute.Bool("combat.killed", res.Killed),
	)
	r.log.V(1).Info("strike", "attacker", res.Attacker, "target", res.Target,
		"damage", res.Damage, "killed", res.Killed, "blocked", res.Blocked)
	return res
}
