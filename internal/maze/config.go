package maze

import (
	"errors"
	"fmt"
)

// Config holds the generation parameters for one maze.
type Config struct {
	Width  int
	Height int

	NumObstacles       int
	ArmLengthMin       int
	ArmLengthMax       int
	ShapeWeights       map[Shape]int // nil means uniform
	MinObstacleSpacing int           // Manhattan distance between anchors
	MinPathLength      int           // 0 disables the check

	MinEntryExitDistance float64
	EntryExitAttempts    int

	StartSearchRadius int
	MinItemDistance   float64
	PositionAttempts  int
}

const (
	DefaultWidth  = 20
	DefaultHeight = 13

	// minSide leaves room for a 3x3 interior and a 2-cell doorway.
	minSide = 5
)

// DefaultConfig returns the standard scene maze settings.
func DefaultConfig() Config {
	return Config{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		NumObstacles:         8,
		ArmLengthMin:         1,
		ArmLengthMax:         3,
		MinObstacleSpacing:   2,
		MinPathLength:        15,
		MinEntryExitDistance: 10,
		EntryExitAttempts:    100,
		StartSearchRadius:    3,
		MinItemDistance:      5,
		PositionAttempts:     100,
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid maze config")

// Validate reports configuration that cannot produce a maze.
func (c Config) Validate() error {
	switch {
	case c.Width < minSide || c.Height < minSide:
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Width, c.Height, minSide, minSide)
	case c.NumObstacles < 0:
		return fmt.Errorf("%w: negative obstacle count %d", ErrInvalidConfig, c.NumObstacles)
	case c.ArmLengthMin < 0 || c.ArmLengthMax < c.ArmLengthMin:
		return fmt.Errorf("%w: arm length range [%d,%d]", ErrInvalidConfig, c.ArmLengthMin, c.ArmLengthMax)
	case c.MinObstacleSpacing < 0 || c.MinPathLength < 0:
		return fmt.Errorf("%w: negative spacing or path length", ErrInvalidConfig)
	case c.EntryExitAttempts < 0 || c.PositionAttempts < 0 || c.StartSearchRadius < 0:
		return fmt.Errorf("%w: negative attempt budget or radius", ErrInvalidConfig)
	}

	if c.ShapeWeights != nil {
		total := 0
		for s, w := range c.ShapeWeights {
			if !s.Valid() {
				return fmt.Errorf("%w: unknown shape %d", ErrInvalidConfig, int(s))
			}
			if w < 0 {
				return fmt.Errorf("%w: negative weight for %s", ErrInvalidConfig, s)
			}
			total += w
		}
		if total == 0 {
			return fmt.Errorf("%w: all shape weights are zero", ErrInvalidConfig)
		}
	}

	return nil
}

// withDefaults fills zero attempt budgets so a partially populated Config still terminates sensibly.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.EntryExitAttempts == 0 {
		c.EntryExitAttempts = d.EntryExitAttempts
	}
	if c.PositionAttempts == 0 {
		c.PositionAttempts = d.PositionAttempts
	}
	return c
}
