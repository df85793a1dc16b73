// Package maze generates bordered scene mazes with an entry, an exit and
// obstacle clusters that never cut the path between them.
package maze

import (
	"context"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/superseed/internal/grid"
	"github.com/samdwyer/superseed/internal/telemetry"
)

// Obstacle is a committed wall cluster.
type Obstacle struct {
	Shape     Shape
	Anchor    grid.Position
	ArmLength int
	Cells     []grid.Position
}

// Report summarises the last Generate call.
type Report struct {
	Requested         int
	Placed            int
	Attempts          int
	PathLength        int // entry to exit, grid.Unreachable if disconnected
	EntryExitDistance float64
	Repaired          bool // the final corridor had to be carved
}

// Maze is a generated scene grid.
type Maze struct {
	cfg    Config
	layout grid.Layout
	rng    *rand.Rand
	log    logr.Logger

	grid      *grid.Grid
	entry     grid.Position
	exit      grid.Position
	entrySide grid.Side
	exitSide  grid.Side
	obstacles []Obstacle
	report    Report
}

// Option configures a Maze.
type Option func(*Maze)

// WithLogger sets the logger used for placement diagnostics.
func WithLogger(l logr.Logger) Option {
	return func(m *Maze) { m.log = l.WithName("maze") }
}

// WithLayout overrides the pixel layout used by the pixel-space queries.
func WithLayout(l grid.Layout) Option {
	return func(m *Maze) { m.layout = l }
}

// New creates an ungenerated maze. A nil rng is seeded from the clock.
func New(cfg Config, rng *rand.Rand, opts ...Option) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Maze{
		cfg:    cfg.withDefaults(),
		layout: grid.DefaultLayout(cfg.Height),
		rng:    rng,
		log:    logr.Discard(),
		grid:   grid.NewBordered(cfg.Width, cfg.Height),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Generate builds the border, the openings and the obstacles, then makes
// sure the entry still reaches the exit. Calling it again starts over.
func (m *Maze) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	m.grid = grid.NewBordered(m.cfg.Width, m.cfg.Height)
	m.obstacles = nil
	m.report = Report{Requested: m.cfg.NumObstacles}

	m.placeEntryExit()
	m.placeObstacles()
	m.report.Repaired = m.Repair()
	m.report.PathLength = m.grid.Distance(m.entry, m.exit)

	span.SetAttributes(
		attribute.Int("maze.width", m.cfg.Width),
		attribute.Int("maze.height", m.cfg.Height),
		attribute.String("maze.entry_side", m.entrySide.String()),
		attribute.String("maze.exit_side", m.exitSide.String()),
		attribute.Int("maze.obstacles_requested", m.report.Requested),
		attribute.Int("maze.obstacles_placed", m.report.Placed),
		attribute.Int("maze.attempts", m.report.Attempts),
		attribute.Int("maze.path_length", m.report.PathLength),
		attribute.Bool("maze.repaired", m.report.Repaired),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// placeEntryExit opens the entry on a random side and the exit on the opposite
// side, re-drawing the exit on any other side while the two are too close.
// Only the accepted openings are carved.
func (m *Maze) placeEntryExit() {
	sides := grid.AllSides()
	m.entrySide = sides[m.rng.Intn(len(sides))]
	entryCells := m.pickOpening(m.entrySide)

	m.exitSide = m.entrySide.Opposite()
	exitCells := m.pickOpening(m.exitSide)

	others := make([]grid.Side, 0, len(sides)-1)
	for _, s := range sides {
		if s != m.entrySide {
			others = append(others, s)
		}
	}

	dist := entryCells[1].Distance(exitCells[1])
	for attempt := 0; dist < m.cfg.MinEntryExitDistance && attempt < m.cfg.EntryExitAttempts; attempt++ {
		m.exitSide = others[m.rng.Intn(len(others))]
		exitCells = m.pickOpening(m.exitSide)
		dist = entryCells[1].Distance(exitCells[1])
	}
	if dist < m.cfg.MinEntryExitDistance {
		m.log.Info("entry and exit closer than requested",
			"distance", dist, "minimum", m.cfg.MinEntryExitDistance, "attempts", m.cfg.EntryExitAttempts)
	}

	m.grid.SetAll(entryCells[:], grid.Open)
	m.grid.SetAll(exitCells[:], grid.Open)
	m.entry, m.exit = entryCells[1], exitCells[1]
	m.report.EntryExitDistance = dist
}

// pickOpening returns two adjacent border cells on the side, away from the
// corners. The second cell is the doorway.
func (m *Maze) pickOpening(side grid.Side) [2]grid.Position {
	w, h := m.cfg.Width, m.cfg.Height
	switch side {
	case grid.Top, grid.Bottom:
		y := 0
		if side == grid.Bottom {
			y = h - 1
		}
		x := 1 + m.rng.Intn(w-4)
		return [2]grid.Position{grid.Pos(x, y), grid.Pos(x+1, y)}
	default:
		x := 0
		if side == grid.Right {
			x = w - 1
		}
		y := 1 + m.rng.Intn(h-4)
		return [2]grid.Position{grid.Pos(x, y), grid.Pos(x, y+1)}
	}
}

// placeObstacles commits up to NumObstacles shapes. Each candidate is checked
// against the grid with its cells as a blocked overlay, so the grid is only
// written once a candidate is accepted.
func (m *Maze) placeObstacles() {
	maxAttempts := m.cfg.NumObstacles * 100
	w, h := m.cfg.Width, m.cfg.Height

	for m.report.Placed < m.cfg.NumObstacles && m.report.Attempts < maxAttempts {
		m.report.Attempts++

		anchor := grid.Pos(1+m.rng.Intn(w-2), 1+m.rng.Intn(h-2))
		if m.tooClose(anchor) {
			continue
		}

		shape := pickShape(m.rng, m.cfg.ShapeWeights)
		arm := m.cfg.ArmLengthMin + m.rng.Intn(m.cfg.ArmLengthMax-m.cfg.ArmLengthMin+1)
		cells := clipInterior(m.grid, ShapeCells(anchor, arm, shape, m.rng.Intn(Variants)))

		blocked := mapset.New[grid.Position]()
		occupied := false
		for _, c := range cells {
			if !m.grid.IsOpen(c) {
				occupied = true
				break
			}
			blocked.Put(c)
		}
		if occupied {
			continue
		}

		dist := m.grid.DistanceAvoiding(m.entry, m.exit, blocked)
		if dist == grid.Unreachable {
			continue
		}
		if m.cfg.MinPathLength > 0 && dist < m.cfg.MinPathLength {
			continue
		}

		m.grid.SetAll(cells, grid.Wall)
		m.obstacles = append(m.obstacles, Obstacle{Shape: shape, Anchor: anchor, ArmLength: arm, Cells: cells})
		m.report.Placed++
		m.log.V(1).Info("placed obstacle",
			"shape", shape.String(), "anchor", anchor.String(), "arm", arm,
			"placed", m.report.Placed, "requested", m.cfg.NumObstacles)
	}

	if m.report.Placed < m.cfg.NumObstacles {
		m.log.Info("obstacle shortfall",
			"placed", m.report.Placed, "requested", m.cfg.NumObstacles, "attempts", m.report.Attempts)
	}
}

func (m *Maze) tooClose(anchor grid.Position) bool {
	for _, o := range m.obstacles {
		if anchor.Manhattan(o.Anchor) < m.cfg.MinObstacleSpacing {
			return true
		}
	}
	return false
}

// Repair carves a corridor between the cells just inside the entry and exit
// when the two are disconnected. It reports whether anything was carved.
func (m *Maze) Repair() bool {
	if m.grid.Connected(m.entry, m.exit) {
		return false
	}

	from := m.entry.Add(m.entrySide.Inward())
	to := m.exit.Add(m.exitSide.Inward())
	m.grid.Set(m.entry, grid.Open)
	m.grid.Set(m.exit, grid.Open)
	path := m.grid.CarveCorridor(from, to)

	m.log.Info("entry and exit disconnected, carved corridor",
		"entry", m.entry.String(), "exit", m.exit.String(), "length", len(path))
	return true
}

// Grid returns the maze grid. Callers may carve repairs into it.
func (m *Maze) Grid() *grid.Grid {
	return m.grid
}

// Cells returns a copy of the grid as rows of 0 (open) and 1 (wall).
func (m *Maze) Cells() [][]int {
	return m.grid.Cells()
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.cfg.Width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.cfg.Height
}

// Entry returns the entry doorway on the border.
func (m *Maze) Entry() grid.Position {
	return m.entry
}

// Exit returns the exit doorway on the border.
func (m *Maze) Exit() grid.Position {
	return m.exit
}

// EntrySide returns the side the entry was opened on.
func (m *Maze) EntrySide() grid.Side {
	return m.entrySide
}

// ExitSide returns the side the exit was opened on.
func (m *Maze) ExitSide() grid.Side {
	return m.exitSide
}

// Obstacles returns the committed obstacles in placement order.
func (m *Maze) Obstacles() []Obstacle {
	return m.obstacles
}

// Report returns the statistics of the last Generate call.
func (m *Maze) Report() Report {
	return m.report
}

// Layout returns the pixel layout used by the pixel-space queries.
func (m *Maze) Layout() grid.Layout {
	return m.layout
}

// Config returns the generation parameters.
func (m *Maze) Config() Config {
	return m.cfg
}
