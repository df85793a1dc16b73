package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"

	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/ui"
)

// Game drives a Session from the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	catalog  *gamedata.Catalog
	cfg      Config
	log      logr.Logger
	running  bool
}

// New creates a new game instance.
func New(cfg Config, catalog *gamedata.Catalog, log logr.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg, catalog, log), nil
}

func newGame(screen *ui.Screen, cfg Config, catalog *gamedata.Catalog, log logr.Logger) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		catalog:  catalog,
		cfg:      cfg,
		log:      log,
		running:  true,
	}
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	s, err := NewSession(ctx, g.cfg, g.catalog, g.log)
	if err != nil {
		return err
	}
	g.session = s

	for g.running {
		g.renderer.Render(g.view())

		// Blocks until the next terminal event.
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) view() ui.View {
	s := g.session
	v := ui.View{
		Area:     s.Area(),
		Scene:    s.Scene(),
		Player:   s.Player(),
		Messages: s.Messages(),
	}
	switch s.State() {
	case StateGameOver:
		v.Banner = "GAME OVER"
	case StateVictory:
		v.Banner = "VICTORY! Press q to quit."
	}
	return v
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKey processes keyboard input.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	s := g.session
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		s.Move(ctx, 0, -1)
	case tcell.KeyDown:
		s.Move(ctx, 0, 1)
	case tcell.KeyLeft:
		s.Move(ctx, -1, 0)
	case tcell.KeyRight:
		s.Move(ctx, 1, 0)

	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			g.running = false
		case ' ':
			s.Swing(ctx)
		case 'f':
			s.Shoot(ctx)
		case 'r':
			s.UseRing()
		case '.', 'w':
			s.Wait(ctx)
		case '1', '2', '3':
			s.Buy(int(r - '1'))
		case 'c':
			s.LoadCheckpoint()
		case 'n':
			s.StartOver()
		}
	}
}
