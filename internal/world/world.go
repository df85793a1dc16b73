// Package world holds the game map: a fixed run of areas, each a row of maze
// scenes the player crosses west to east.
package world

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/maze"
	"github.com/samdwyer/superseed/internal/telemetry"
)

// Params configures world construction.
type Params struct {
	Catalog  *gamedata.Catalog
	Maze     maze.Config
	HasSword bool
	Rand     *rand.Rand // nil means seeded from the clock
	Logger   logr.Logger
}

// World is every area, plus where the player currently is.
type World struct {
	Areas        []*Area
	CurrentArea  int
	CurrentScene int

	log logr.Logger
}

// New builds one area per area definition in the catalog.
func New(ctx context.Context, p Params) (*World, error) {
	if p.Catalog == nil {
		return nil, errors.New("world: catalog is required")
	}
	if len(p.Catalog.Areas) == 0 {
		return nil, errors.New("world: catalog has no areas")
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ctx, span := telemetry.Tracer("world").Start(ctx, "world.build")
	defer span.End()
	start := time.Now()

	w := &World{
		Areas: make([]*Area, 0, len(p.Catalog.Areas)),
		log:   p.Logger.WithName("world"),
	}
	carved := 0
	for _, def := range p.Catalog.Areas {
		a, err := NewArea(ctx, def.ID, p)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		for _, s := range a.Scenes {
			carved += s.Carved
		}
		w.Areas = append(w.Areas, a)
	}

	span.SetAttributes(
		attribute.Int("world.areas", len(w.Areas)),
		attribute.Int("world.scenes", len(w.Areas)*ScenesPerArea),
		attribute.Int("world.carved", carved),
		attribute.Int64("world.generation_ms", time.Since(start).Milliseconds()),
	)
	w.log.V(1).Info("world built", "areas", len(w.Areas), "carved", carved)
	return w, nil
}

// CurrentSceneRef returns where the player is.
func (w *World) CurrentSceneRef() SceneRef {
	return SceneRef{Area: w.CurrentArea, Scene: w.CurrentScene}
}

// Area returns the current area.
func (w *World) Area() *Area {
	return w.Areas[w.CurrentArea]
}

// Scene returns the current scene.
func (w *World) Scene() *Scene {
	return w.Areas[w.CurrentArea].Scenes[w.CurrentScene]
}

// SceneAt returns the referenced scene, or nil when it does not exist.
func (w *World) SceneAt(ref SceneRef) *Scene {
	if ref.Area < 0 || ref.Area >= len(w.Areas) {
		return nil
	}
	scenes := w.Areas[ref.Area].Scenes
	if ref.Scene < 0 || ref.Scene >= len(scenes) {
		return nil
	}
	return scenes[ref.Scene]
}

// MoveToScene follows the current scene's exit in dir. It reports false,
// leaving the position unchanged, when there is no exit that way.
func (w *World) MoveToScene(dir Direction) bool {
	ref, ok := w.Scene().Exits[dir]
	if !ok {
		return false
	}
	w.log.V(1).Info("moved", "from", w.CurrentSceneRef().String(), "to", ref.String(), "direction", dir.String())
	return w.GoTo(ref)
}

// AdvanceArea moves to the first scene of the next area. It reports false in
// the last area.
func (w *World) AdvanceArea() bool {
	if w.CurrentArea+1 >= len(w.Areas) {
		return false
	}
	w.log.Info("entering area", "area", w.CurrentArea+1, "name", w.Areas[w.CurrentArea+1].Name)
	return w.GoTo(SceneRef{Area: w.CurrentArea + 1, Scene: 0})
}

// GoTo jumps to the referenced scene. It reports false for an unknown scene.
func (w *World) GoTo(ref SceneRef) bool {
	if w.SceneAt(ref) == nil {
		return false
	}
	w.CurrentArea, w.CurrentScene = ref.Area, ref.Scene
	return true
}

// SwordScene returns the scene that holds the sword while it is unclaimed.
func (w *World) SwordScene() *Scene {
	return w.SceneAt(SceneRef{Area: 0, Scene: BossScene})
}
