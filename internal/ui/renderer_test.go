package ui

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/superseed/internal/entity"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/maze"
	"github.com/samdwyer/superseed/internal/world"
)

func testView(t *testing.T, sceneID int) (View, *Screen) {
	t.Helper()
	catalog := gamedata.MustLoadCatalog()
	scene, err := world.NewScene(context.Background(), world.SceneParams{
		AreaID:  0,
		SceneID: sceneID,
		Catalog: catalog,
		Maze:    maze.DefaultConfig(),
		Rand:    rand.New(rand.NewSource(17)),
	})
	require.NoError(t, err)
	scene.ClearEnemies()

	player := entity.NewPlayer("Ada")
	player.Pos = scene.Start

	screen, err := Wrap(tcell.NewSimulationScreen("UTF-8"))
	require.NoError(t, err)
	t.Cleanup(screen.Close)

	return View{
		Area:     catalog.Area(0),
		Scene:    scene,
		Player:   player,
		Messages: []string{"hello"},
	}, screen
}

func rowText(s *Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(s.Content(x, y))
	}
	return b.String()
}

func TestRenderDrawsScene(t *testing.T) {
	v, screen := testView(t, 2)
	NewRenderer(screen).Render(v)

	m := v.Scene.Maze
	assert.Equal(t, '#', screen.Content(0, hudRows), "top-left corner is wall")
	assert.Equal(t, '@', screen.Content(v.Player.Pos.X, v.Player.Pos.Y+hudRows))

	for _, p := range maze.Opening(m.Entry(), m.EntrySide()) {
		assert.Equal(t, '<', screen.Content(p.X, p.Y+hudRows))
	}
	for _, p := range maze.Opening(m.Exit(), m.ExitSide()) {
		assert.Equal(t, '>', screen.Content(p.X, p.Y+hudRows))
	}

	assert.True(t, strings.HasPrefix(rowText(screen, 0, 40), "The Slums of Krypto 1-3"))
	assert.True(t, strings.HasPrefix(rowText(screen, hudRows+m.Height()+1, 10), "hello"))
}

func TestRenderNoWestDoorInFirstScene(t *testing.T) {
	v, screen := testView(t, 0)
	NewRenderer(screen).Render(v)

	m := v.Scene.Maze
	for _, p := range maze.Opening(m.Entry(), m.EntrySide()) {
		if p == v.Player.Pos {
			continue
		}
		assert.Equal(t, '.', screen.Content(p.X, p.Y+hudRows))
	}
}

func TestRenderBanner(t *testing.T) {
	v, screen := testView(t, 1)
	v.Banner = "GAME OVER"
	NewRenderer(screen).Render(v)

	y := hudRows + v.Scene.Maze.Height() + 1
	assert.True(t, strings.HasPrefix(rowText(screen, y, 20), "GAME OVER"))
	assert.True(t, strings.HasPrefix(rowText(screen, y+1, 20), "hello"))
}

func TestHUDLine(t *testing.T) {
	area := &gamedata.AreaDef{Name: "Seisan Spires"}
	scene := &world.Scene{AreaID: 1, SceneID: 4}
	p := entity.NewPlayer("Ada")

	assert.Equal(t, "Seisan Spires 2-5 | HP 100/100 | Infection 50% | Fragments 0/6 | Supercollateral 0",
		HUDLine(area, scene, p))

	p.Inventory.AddSword()
	p.ActivateRing()
	line := HUDLine(area, scene, p)
	assert.Contains(t, line, "| Sword")
	assert.Contains(t, line, "| Ring")
}
