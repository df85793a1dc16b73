package world

import (
	"context"

	"github.com/samdwyer/superseed/internal/gamedata"
)

// Area is a themed run of scenes ending in a boss scene.
type Area struct {
	ID     int
	Name   string
	Def    *gamedata.AreaDef
	Scenes []*Scene
}

// NewArea builds every scene of the area.
func NewArea(ctx context.Context, id int, p Params) (*Area, error) {
	def := p.Catalog.Area(id)
	a := &Area{
		ID:     id,
		Name:   def.Name,
		Def:    def,
		Scenes: make([]*Scene, 0, ScenesPerArea),
	}
	for i := 0; i < ScenesPerArea; i++ {
		s, err := NewScene(ctx, SceneParams{
			AreaID:   id,
			SceneID:  i,
			Catalog:  p.Catalog,
			Maze:     p.Maze,
			HasSword: p.HasSword,
			Rand:     p.Rand,
			Logger:   p.Logger,
		})
		if err != nil {
			return nil, err
		}
		a.Scenes = append(a.Scenes, s)
	}
	return a, nil
}

// BossScene returns the area's last scene.
func (a *Area) BossScene() *Scene {
	return a.Scenes[BossScene]
}
