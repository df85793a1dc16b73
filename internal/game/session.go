package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/superseed/internal/combat"
	"github.com/samdwyer/superseed/internal/entity"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/telemetry"
	"github.com/samdwyer/superseed/internal/world"
)

// Rules of play.
const (
	TokenReward      = 5  // supercollateral per token while carrying the sword
	TokenCure        = 10 // infection removed per token without the sword
	InfectionPerTurn = 1
	FragmentsToWin   = 6
	ShotRange        = 8 // cells
	maxMessages      = 6
)

// Session is one playthrough: the world, the player and the rules that tie
// them together. It knows nothing about the terminal.
type Session struct {
	cfg      Config
	catalog  *gamedata.Catalog
	world    *world.World
	player   *entity.Player
	cp       entity.Checkpoint
	resolver *combat.Resolver
	rng      *rand.Rand
	log      logr.Logger

	state    State
	turn     int
	vendor   *entity.NPC // vendor the player is trading with
	messages []string
}

// NewSession builds the world and places the player at the start of the
// first scene.
func NewSession(ctx context.Context, cfg Config, catalog *gamedata.Catalog, log logr.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	seed := cfg.ResolvedSeed()
	rng := rand.New(rand.NewSource(seed))

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.session")
	defer span.End()

	w, err := world.New(ctx, world.Params{
		Catalog: catalog,
		Maze:    cfg.MazeConfig(),
		Rand:    rng,
		Logger:  log,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("build world: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		catalog:  catalog,
		world:    w,
		player:   entity.NewPlayer(cfg.PlayerName),
		resolver: combat.NewResolver(log),
		rng:      rng,
		log:      log.WithName("game"),
		state:    StateExplore,
	}
	s.enterScene()
	s.say(fmt.Sprintf("%s wakes in %s. Find the sword before the infection spreads.", s.player.Name, s.Area().Name))

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("player.name", s.player.Name),
		attribute.Int("player.start_x", s.player.Pos.X),
		attribute.Int("player.start_y", s.player.Pos.Y),
	)
	s.log.Info("session started", "seed", seed, "player", s.player.Name)
	return s, nil
}

// World returns the game world.
func (s *Session) World() *world.World { return s.world }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.player }

// Scene returns the scene the player is in.
func (s *Session) Scene() *world.Scene { return s.world.Scene() }

// Area returns the definition of the current area.
func (s *Session) Area() *gamedata.AreaDef { return s.catalog.Area(s.world.CurrentArea) }

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Turn returns the number of turns played.
func (s *Session) Turn() int { return s.turn }

// Messages returns the most recent messages, oldest first.
func (s *Session) Messages() []string { return s.messages }

// Vendor returns the vendor the player is trading with, or nil.
func (s *Session) Vendor() *entity.NPC { return s.vendor }

// HasCheckpoint reports whether a checkpoint has been saved.
func (s *Session) HasCheckpoint() bool { return s.cp.Has() }

// InfectionActive reports whether the infection grows each turn. It stops
// once the player holds the sword or has recovered a fragment.
func (s *Session) InfectionActive() bool {
	inv := s.player.Inventory
	return !inv.HasSword && inv.Fragments == 0
}

func (s *Session) say(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[len(s.messages)-maxMessages:]
	}
}

// Move steps the player and plays out the turn.
func (s *Session) Move(ctx context.Context, dx, dy int) {
	if s.state != StateExplore {
		return
	}
	s.vendor = nil
	scene := s.world.Scene()

	if npc := scene.NPC; npc != nil && npc.Pos == s.player.Pos.Add(dx, dy) {
		s.talk(npc)
		s.endTurn(ctx)
		return
	}

	s.player.Move(dx, dy, scene.Maze)
	if dir, ok := scene.ExitAt(s.player.Pos); ok {
		s.changeScene(dir)
	} else {
		s.pickup()
	}
	if s.state == StateExplore {
		s.endTurn(ctx)
	}
}

// Wait passes a turn.
func (s *Session) Wait(ctx context.Context) {
	if s.state != StateExplore {
		return
	}
	s.endTurn(ctx)
}

// UseRing activates the Optimism Ring. It takes no turn.
func (s *Session) UseRing() {
	if s.state != StateExplore {
		return
	}
	if s.player.ActivateRing() {
		s.say(fmt.Sprintf("The Optimism Ring shields you for %d turns.", s.player.RingDuration))
	} else {
		s.say("The Optimism Ring is already active.")
	}
}

// Buy purchases the vendor's upgrade at index. It takes no turn.
func (s *Session) Buy(index int) bool {
	if s.vendor == nil {
		s.say("There is no one to trade with.")
		return false
	}
	if index < 0 || index >= len(s.vendor.Upgrades) {
		return false
	}
	u := &s.vendor.Upgrades[index]
	if !s.player.ApplyUpgrade(u) {
		s.say(fmt.Sprintf("%s costs %d supercollateral.", u.Name, u.Cost))
		return false
	}
	s.say(fmt.Sprintf("Bought %s.", u.Name))
	s.log.V(1).Info("upgrade bought", "upgrade", u.ID, "left", s.player.Inventory.Supercollateral)
	return true
}

func (s *Session) talk(npc *entity.NPC) {
	for _, line := range npc.Lore {
		s.say(npc.Title() + ": " + line)
	}
	if npc.Kind != gamedata.NPCVendor {
		return
	}
	s.vendor = npc
	for i, u := range npc.Upgrades {
		s.say(fmt.Sprintf("%d) %s, %d supercollateral: %s", i+1, u.Name, u.Cost, u.Description))
	}
}

// pickup collects everything under the player.
func (s *Session) pickup() {
	scene := s.world.Scene()
	for _, it := range scene.ItemsAt(s.player.Rect(scene.Maze.Layout())) {
		switch it.Kind {
		case entity.ItemToken:
			scene.Collect(it.ID)
			if s.player.Inventory.HasSword {
				s.player.Inventory.AddSupercollateral(TokenReward)
				s.say(fmt.Sprintf("Token converted: +%d supercollateral.", TokenReward))
			} else {
				s.player.UpdateInfection(-TokenCure)
				s.say("The token eases the infection.")
			}
		case entity.ItemCheckpoint:
			s.cp.Save(s.player, s.world.CurrentArea, s.world.CurrentScene)
			s.say("Checkpoint saved.")
		case entity.ItemSword:
			scene.Collect(it.ID)
			s.player.Inventory.AddSword()
			s.say("You take up the Sword of Solvency. The infection halts.")
			s.log.Info("sword collected", "turn", s.turn)
		case entity.ItemFragment:
			scene.Collect(it.ID)
			s.collectFragment()
			return
		}
	}
}

func (s *Session) collectFragment() {
	s.player.CollectFragment()
	n := s.player.Inventory.Fragments
	s.log.Info("fragment collected", "fragments", n, "area", s.world.CurrentArea)
	if n >= FragmentsToWin {
		s.state = StateVictory
		s.say("The Superseed is whole again. Victory!")
		return
	}
	s.say(fmt.Sprintf("Superseed fragment %d of %d recovered.", n, FragmentsToWin))
	if s.world.AdvanceArea() {
		s.enterScene()
		s.say("You arrive in " + s.Area().Name + ".")
	}
}

func (s *Session) changeScene(dir world.Direction) {
	if !s.world.MoveToScene(dir) {
		return
	}
	s.enterScene()
	s.say(fmt.Sprintf("You head %s.", dir))
}

func (s *Session) enterScene() {
	s.vendor = nil
	s.player.Pos = s.world.Scene().Start
}

// endTurn lets the scene act, then advances the infection and timers.
func (s *Session) endTurn(ctx context.Context) {
	s.turn++
	scene := s.world.Scene()

	s.enemyTurns(ctx, scene)
	if s.state != StateExplore {
		return
	}

	if s.InfectionActive() && s.player.UpdateInfection(InfectionPerTurn) {
		s.gameOver("The infection has consumed you.")
		return
	}

	if s.rng.Intn(100) < s.cfg.SpawnChance {
		if e := scene.SpawnEnemy(s.player.Inventory.HasSword, s.player.Pos); e != nil {
			s.say(fmt.Sprintf("A %s appears.", e.Name))
		}
	}
	s.player.Tick()
}

func (s *Session) gameOver(reason string) {
	s.state = StateGameOver
	s.say(reason)
	if s.cp.Has() {
		s.say("Press c to return to your checkpoint or n to start over.")
	} else {
		s.say("Press n to start over.")
	}
	s.log.Info("game over", "reason", reason, "turn", s.turn,
		"area", s.world.CurrentArea, "scene", s.world.CurrentScene)
}

// LoadCheckpoint restores the last checkpoint after a game over.
func (s *Session) LoadCheckpoint() bool {
	if s.state != StateGameOver {
		return false
	}
	area, scene, ok := s.cp.Load(s.player)
	if !ok {
		s.say("No checkpoint saved.")
		return false
	}
	s.world.GoTo(world.SceneRef{Area: area, Scene: scene})
	s.world.Scene().ClearEnemies()
	s.world.SwordScene().RelocateSword(s.player.Inventory.HasSword)
	s.vendor = nil
	s.state = StateExplore
	s.say("You return to your checkpoint.")
	return true
}

// StartOver resets the player and returns to the first scene.
func (s *Session) StartOver() {
	if s.state == StateExplore {
		return
	}
	s.world.GoTo(world.SceneRef{})
	s.player.Reset()
	s.enterScene()
	s.world.Scene().ClearEnemies()
	s.world.SwordScene().RelocateSword(false)
	s.state = StateExplore
	s.say("You start over in " + s.Area().Name + ".")
}
