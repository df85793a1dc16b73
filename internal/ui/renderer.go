package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/superseed/internal/entity"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/grid"
	"github.com/samdwyer/superseed/internal/maze"
	"github.com/samdwyer/superseed/internal/world"
)

// Screen rows above the maze.
const hudRows = 1

// View is everything the renderer draws for one frame.
type View struct {
	Area     *gamedata.AreaDef
	Scene    *world.Scene
	Player   *entity.Player
	Messages []string
	Banner   string // shown in place of the first message row, e.g. "GAME OVER"
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the HUD, the scene and the message log.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.renderHUD(v)
	r.renderMaze(v)
	r.renderEntities(v)

	y := hudRows + v.Scene.Maze.Height() + 1
	if v.Banner != "" {
		r.RenderMessage(v.Banner, y, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		y++
	}
	for _, msg := range v.Messages {
		r.RenderMessage(msg, y, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		y++
	}

	r.screen.Show()
}

// HUDLine formats the status line shown above the maze.
func HUDLine(area *gamedata.AreaDef, scene *world.Scene, p *entity.Player) string {
	line := fmt.Sprintf("%s %d-%d | HP %d/%d | Infection %d%% | Fragments %d/6 | Supercollateral %d",
		area.Name, scene.AreaID+1, scene.SceneID+1, p.HP, p.MaxHP, p.Infection,
		p.Inventory.Fragments, p.Inventory.Supercollateral)
	if p.Inventory.HasSword {
		line += " | Sword"
	}
	if p.RingActive() {
		line += " | Ring"
	}
	return line
}

func (r *Renderer) renderHUD(v View) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	r.RenderMessage(HUDLine(v.Area, v.Scene, v.Player), 0, style)
}

func (r *Renderer) renderMaze(v View) {
	m := v.Scene.Maze
	floor := tcell.StyleDefault.Foreground(v.Area.FloorColor()).Background(v.Area.BackgroundColor())
	wall := tcell.StyleDefault.Foreground(v.Area.WallColor()).Background(v.Area.BackgroundColor())

	m.Grid().ForEachCell(func(p grid.Position, c grid.Cell) {
		style := floor
		if c == grid.Wall {
			style = wall
		}
		r.screen.SetContent(p.X, p.Y+hudRows, c.Rune(), style)
	})

	door := tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(v.Area.BackgroundColor())
	if _, ok := v.Scene.Exits[world.West]; ok {
		r.renderOpening(maze.Opening(m.Entry(), m.EntrySide()), '<', door)
	}
	if _, ok := v.Scene.Exits[world.East]; ok {
		r.renderOpening(maze.Opening(m.Exit(), m.ExitSide()), '>', door)
	}
}

func (r *Renderer) renderOpening(cells [2]grid.Position, ch rune, style tcell.Style) {
	for _, p := range cells {
		r.screen.SetContent(p.X, p.Y+hudRows, ch, style)
	}
}

func (r *Renderer) renderEntities(v View) {
	for _, it := range v.Scene.Items {
		r.screen.SetContent(it.Pos.X, it.Pos.Y+hudRows, it.Kind.Symbol(), itemStyle(it.Kind))
	}

	if npc := v.Scene.NPC; npc != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		r.screen.SetContent(npc.Pos.X, npc.Pos.Y+hudRows, npc.Symbol(), style)
	}

	for _, e := range v.Scene.Creatures() {
		style := tcell.StyleDefault.Foreground(e.Color()).Bold(e.IsBoss())
		size := e.Size()
		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < size; dx++ {
				r.screen.SetContent(e.Pos.X+dx, e.Pos.Y+dy+hudRows, e.Symbol, style)
			}
		}
	}

	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if v.Player.RingActive() {
		playerStyle = playerStyle.Foreground(tcell.ColorFuchsia)
	}
	r.screen.SetContent(v.Player.Pos.X, v.Player.Pos.Y+hudRows, v.Player.Symbol, playerStyle)
}

func itemStyle(kind entity.ItemKind) tcell.Style {
	switch kind {
	case entity.ItemToken:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case entity.ItemCheckpoint:
		return tcell.StyleDefault.Foreground(tcell.ColorLime)
	case entity.ItemSword:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case entity.ItemFragment:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style) {
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
