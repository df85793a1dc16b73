package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/superseed/internal/maze"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed        = "SUPERSEED_SEED"
	EnvObstacles   = "SUPERSEED_OBSTACLES"
	EnvMinPath     = "SUPERSEED_MIN_PATH"
	EnvPlayer      = "SUPERSEED_PLAYER"
	EnvLogV        = "SUPERSEED_LOG_V"
	EnvSpawnChance = "SUPERSEED_SPAWN_CHANCE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Obstacles     int    // obstacles per regular scene
	MinPathLength int    // shortest allowed entry to exit walk
	PlayerName    string
	LogVerbosity  int
	SpawnChance   int // percent chance per turn of a new roaming enemy
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	m := maze.DefaultConfig()
	return Config{
		Obstacles:     m.NumObstacles,
		MinPathLength: m.MinPathLength,
		PlayerName:    "Hero",
		SpawnChance:   5,
	}
}

// LoadConfig reads the configuration from the environment, falling back to
// DefaultConfig for anything unset.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfg.Seed, err = envInt64(EnvSeed, cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.Obstacles, err = envInt(EnvObstacles, cfg.Obstacles); err != nil {
		return cfg, err
	}
	if cfg.MinPathLength, err = envInt(EnvMinPath, cfg.MinPathLength); err != nil {
		return cfg, err
	}
	if cfg.LogVerbosity, err = envInt(EnvLogV, cfg.LogVerbosity); err != nil {
		return cfg, err
	}
	if cfg.SpawnChance, err = envInt(EnvSpawnChance, cfg.SpawnChance); err != nil {
		return cfg, err
	}
	if name := strings.TrimSpace(os.Getenv(EnvPlayer)); name != "" {
		cfg.PlayerName = name
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Obstacles < 0 {
		errs = append(errs, fmt.Errorf("obstacles must not be negative, got %d", c.Obstacles))
	}
	if c.MinPathLength < 0 {
		errs = append(errs, fmt.Errorf("min path length must not be negative, got %d", c.MinPathLength))
	}
	if c.SpawnChance < 0 || c.SpawnChance > 100 {
		errs = append(errs, fmt.Errorf("spawn chance must be between 0 and 100, got %d", c.SpawnChance))
	}
	if c.PlayerName == "" {
		errs = append(errs, errors.New("player name must not be empty"))
	}
	return errors.Join(errs...)
}

// ResolvedSeed returns the configured seed, or a clock-based one when the
// seed is 0.
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// MazeConfig returns the base maze configuration for regular scenes.
func (c Config) MazeConfig() maze.Config {
	m := maze.DefaultConfig()
	m.NumObstacles = c.Obstacles
	m.MinPathLength = c.MinPathLength
	return m
}

func envInt(key string, def int) (int, error) {
	v, err := envInt64(key, int64(def))
	return int(v), err
}

func envInt64(key string, def int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
