package world

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/superseed/internal/entity"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/grid"
	"github.com/samdwyer/superseed/internal/maze"
	"github.com/samdwyer/superseed/internal/telemetry"
)

const (
	// ScenesPerArea is how many scenes each area holds, west to east.
	ScenesPerArea = 5
	// BossScene is the easternmost scene of an area, where the boss waits.
	BossScene = ScenesPerArea - 1
	// MaxEnemies caps the roaming enemies in one scene.
	MaxEnemies = 5

	maxTokens       = 3
	maxStartEnemies = 3
	itemRetries     = 10
)

// Direction is a way out of a scene.
type Direction int

const (
	West Direction = iota
	East
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// SceneRef addresses a scene within the world.
type SceneRef struct {
	Area  int
	Scene int
}

func (r SceneRef) String() string {
	return fmt.Sprintf("%d-%d", r.Area, r.Scene)
}

// SceneParams configures scene construction.
type SceneParams struct {
	AreaID   int
	SceneID  int
	Catalog  *gamedata.Catalog
	Maze     maze.Config // base maze config, overridden by the scene's profile
	HasSword bool        // whether the player already carries the sword
	Rand     *rand.Rand
	Logger   logr.Logger
}

// Scene is one maze screen with everything placed in it.
type Scene struct {
	ID      uuid.UUID
	AreaID  int
	SceneID int
	Maze    *maze.Maze
	Start   grid.Position // where the player appears on entering
	Items   []entity.Item
	Boss    *entity.Enemy
	Enemies []*entity.Enemy
	NPC     *entity.NPC
	Exits   map[Direction]SceneRef
	Carved  int // corridors carved to make items reachable

	catalog *gamedata.Catalog
	rng     *rand.Rand
	log     logr.Logger
}

// NewScene generates the maze for a scene and populates it.
func NewScene(ctx context.Context, p SceneParams) (*Scene, error) {
	if p.Catalog == nil {
		return nil, fmt.Errorf("scene %d-%d: catalog is required", p.AreaID, p.SceneID)
	}
	if p.Rand == nil {
		return nil, fmt.Errorf("scene %d-%d: random source is required", p.AreaID, p.SceneID)
	}
	log := p.Logger

	ctx, span := telemetry.Tracer("world").Start(ctx, "scene.build")
	defer span.End()

	profile := gamedata.ProfileDefault
	if p.SceneID == BossScene {
		profile = gamedata.ProfileBoss
	}
	cfg, err := p.Catalog.Mazes.Get(profile).Apply(p.Maze)
	if err != nil {
		return nil, fmt.Errorf("scene %d-%d: %w", p.AreaID, p.SceneID, err)
	}
	m, err := maze.New(cfg, p.Rand, maze.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("scene %d-%d: %w", p.AreaID, p.SceneID, err)
	}
	m.Generate(ctx)

	s := &Scene{
		ID:      entity.NewID(p.Rand),
		AreaID:  p.AreaID,
		SceneID: p.SceneID,
		Maze:    m,
		Start:   m.FindOpenStartCell(),
		Exits:   make(map[Direction]SceneRef, 2),
		catalog: p.Catalog,
		rng:     p.Rand,
		log:     log.WithValues("area", p.AreaID, "scene", p.SceneID),
	}
	s.setupExits()
	s.placeItems(p.HasSword)
	s.placeCreatures(p.HasSword)
	s.ensureReachable()

	span.SetAttributes(
		attribute.String("scene.id", s.ID.String()),
		attribute.Int("scene.area", s.AreaID),
		attribute.Int("scene.index", s.SceneID),
		attribute.String("scene.profile", profile),
		attribute.Int("scene.items", len(s.Items)),
		attribute.Int("scene.enemies", len(s.Enemies)),
		attribute.Bool("scene.npc", s.NPC != nil),
		attribute.Int("scene.carved", s.Carved),
	)
	return s, nil
}

func (s *Scene) setupExits() {
	if s.SceneID > 0 {
		s.Exits[West] = SceneRef{Area: s.AreaID, Scene: s.SceneID - 1}
	}
	if s.SceneID < BossScene {
		s.Exits[East] = SceneRef{Area: s.AreaID, Scene: s.SceneID + 1}
	}
}

// IsBossScene reports whether this is the area's boss scene.
func (s *Scene) IsBossScene() bool {
	return s.SceneID == BossScene
}

func (s *Scene) placeItems(hasSword bool) {
	tokens := 1 + s.rng.Intn(maxTokens)
	for i := 0; i < tokens; i++ {
		s.addItem(entity.ItemToken)
	}
	if s.IsBossScene() {
		s.addItem(entity.ItemCheckpoint)
	}
	if s.holdsSword() && !hasSword {
		s.addItem(entity.ItemSword)
	}
	if s.IsBossScene() {
		s.addItem(entity.ItemFragment)
	}
}

// holdsSword reports whether the sword lies in this scene when unclaimed.
func (s *Scene) holdsSword() bool {
	return s.AreaID == 0 && s.IsBossScene()
}

// addItem places an item on a free open cell and returns it.
func (s *Scene) addItem(kind entity.ItemKind) entity.Item {
	taken := mapset.New[grid.Position]()
	for _, it := range s.Items {
		taken.Put(it.Pos)
	}
	taken.Put(s.Start)

	pos := s.Maze.FindOpenCell()
	for i := 0; i < itemRetries && taken.Has(pos); i++ {
		pos = s.Maze.FindOpenCell()
	}

	item := entity.Item{ID: entity.NewID(s.rng), Kind: kind, Pos: pos}
	s.Items = append(s.Items, item)
	s.log.V(1).Info("placed item", "kind", kind.String(), "cell", pos.String())
	return item
}

func (s *Scene) placeCreatures(hasSword bool) {
	player := s.Maze.Layout().CellRect(s.Start)

	if s.IsBossScene() {
		if def := s.catalog.Enemies.BossFor(s.AreaID); def != nil {
			s.Boss = entity.PlaceEnemy(s.Maze, s.rng, def, player)
		}
	} else {
		n := 1 + s.rng.Intn(maxStartEnemies)
		for i := 0; i < n; i++ {
			s.SpawnEnemy(hasSword, s.Start)
		}
	}

	if npc, ok := entity.PlaceNPC(s.Maze, s.rng, &s.catalog.NPCs, player); ok {
		s.NPC = npc
	}
}

// SpawnEnemy adds a roaming enemy suited to the area, away from the player at
// cell playerPos. It returns nil when the scene is full or nothing may roam.
func (s *Scene) SpawnEnemy(hasSword bool, playerPos grid.Position) *entity.Enemy {
	if len(s.Enemies) >= MaxEnemies {
		return nil
	}
	def := s.catalog.Enemies.SpawnFor(s.rng, s.AreaID, hasSword)
	if def == nil {
		return nil
	}
	e := entity.PlaceEnemy(s.Maze, s.rng, def, s.Maze.Layout().CellRect(playerPos))
	s.Enemies = append(s.Enemies, e)
	return e
}

// Summon adds count enemies of the given kind next to the summoner, ignoring
// the roaming cap.
func (s *Scene) Summon(id string, count int, near grid.Position) []*entity.Enemy {
	def := s.catalog.Enemies.GetByID(id)
	if def == nil {
		return nil
	}
	var out []*entity.Enemy
	for i := 0; i < count; i++ {
		pos := s.freeCellNear(near, def.Footprint())
		e := entity.NewEnemy(def, pos, s.rng)
		s.Enemies = append(s.Enemies, e)
		out = append(out, e)
	}
	return out
}

// freeCellNear returns the open cell closest to p, searching outward ring by
// ring, where a size x size footprint fits. Falls back to p.
func (s *Scene) freeCellNear(p grid.Position, size int) grid.Position {
	l := s.Maze.Layout()
	limit := max(s.Maze.Width(), s.Maze.Height())
	for r := 1; r < limit; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				c := p.Add(dx, dy)
				if c.X < 0 || c.Y < 0 || c.X+size > s.Maze.Width() || c.Y+size > s.Maze.Height() {
					continue
				}
				if !s.Maze.Collides(entity.Footprint(l, c, size)) {
					return c
				}
			}
		}
	}
	return p
}

// ensureReachable carves a corridor from the start cell to any item the
// player cannot walk to.
func (s *Scene) ensureReachable() {
	g := s.Maze.Grid()
	origin := s.Start
	if g.IsBorder(origin) {
		dx, dy := s.Maze.EntrySide().Inward()
		origin = origin.Add(dx, dy)
	}

	for _, it := range s.Items {
		if g.Connected(s.Start, it.Pos) {
			continue
		}
		path := g.CarveCorridor(origin, it.Pos)
		s.Carved++
		s.log.Info("item unreachable, carved corridor",
			"kind", it.Kind.String(), "cell", it.Pos.String(), "length", len(path))
	}
}

// ItemsOf returns the items of the given kind still in the scene.
func (s *Scene) ItemsOf(kind entity.ItemKind) []entity.Item {
	var out []entity.Item
	for _, it := range s.Items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

// Sword returns the sword if it lies in this scene.
func (s *Scene) Sword() (entity.Item, bool) {
	swords := s.ItemsOf(entity.ItemSword)
	if len(swords) == 0 {
		return entity.Item{}, false
	}
	return swords[0], true
}

// ItemAt returns the first item whose rectangle overlaps r.
func (s *Scene) ItemAt(r grid.Rect) (entity.Item, bool) {
	items := s.ItemsAt(r)
	if len(items) == 0 {
		return entity.Item{}, false
	}
	return items[0], true
}

// ItemsAt returns every item whose rectangle overlaps r.
func (s *Scene) ItemsAt(r grid.Rect) []entity.Item {
	l := s.Maze.Layout()
	var out []entity.Item
	for _, it := range s.Items {
		if it.Rect(l).Intersects(r) {
			out = append(out, it)
		}
	}
	return out
}

// Collect removes the item with the given ID from the scene.
func (s *Scene) Collect(id uuid.UUID) (entity.Item, bool) {
	for i, it := range s.Items {
		if it.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return it, true
		}
	}
	return entity.Item{}, false
}

// RelocateSword puts the sword back on a random open cell of its scene,
// unless the player still carries it or it is already lying here.
func (s *Scene) RelocateSword(hasSword bool) bool {
	if hasSword || !s.holdsSword() {
		return false
	}
	if _, ok := s.Sword(); ok {
		return false
	}
	it := s.addItem(entity.ItemSword)
	s.ensureReachable()
	s.log.Info("sword relocated", "cell", it.Pos.String())
	return true
}

// RemoveEnemy drops a defeated enemy from the scene.
func (s *Scene) RemoveEnemy(e *entity.Enemy) {
	if s.Boss == e {
		s.Boss = nil
		return
	}
	for i, other := range s.Enemies {
		if other == e {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
			return
		}
	}
}

// ClearEnemies removes every roaming enemy. The boss stays.
func (s *Scene) ClearEnemies() {
	s.Enemies = nil
}

// Creatures returns the boss, if any, followed by the roaming enemies.
func (s *Scene) Creatures() []*entity.Enemy {
	out := make([]*entity.Enemy, 0, len(s.Enemies)+1)
	if s.Boss != nil {
		out = append(out, s.Boss)
	}
	return append(out, s.Enemies...)
}

// EnemyAt returns the first creature whose footprint covers cell p.
func (s *Scene) EnemyAt(p grid.Position) *entity.Enemy {
	for _, e := range s.Creatures() {
		if e.Occupies(p) {
			return e
		}
	}
	return nil
}

// ExitAt reports which way out the player standing on cell p is taking.
// The entry doorway leads west and the exit doorway leads east, each only
// when the scene has a neighbour that way.
func (s *Scene) ExitAt(p grid.Position) (Direction, bool) {
	if onOpening(p, s.Maze.Entry(), s.Maze.EntrySide()) {
		if _, ok := s.Exits[West]; ok {
			return West, true
		}
	}
	if onOpening(p, s.Maze.Exit(), s.Maze.ExitSide()) {
		if _, ok := s.Exits[East]; ok {
			return East, true
		}
	}
	return 0, false
}

func onOpening(p, door grid.Position, side grid.Side) bool {
	cells := maze.Opening(door, side)
	return p == cells[0] || p == cells[1]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
