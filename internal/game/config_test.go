package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/superseed/internal/maze"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvObstacles, EnvMinPath, EnvPlayer, EnvLogV, EnvSpawnChance} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, maze.DefaultConfig().NumObstacles, cfg.Obstacles)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvObstacles, "4")
	t.Setenv(EnvMinPath, " 20 ")
	t.Setenv(EnvPlayer, "Ada")
	t.Setenv(EnvLogV, "2")
	t.Setenv(EnvSpawnChance, "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Seed:          1234,
		Obstacles:     4,
		MinPathLength: 20,
		PlayerName:    "Ada",
		LogVerbosity:  2,
		SpawnChance:   0,
	}, cfg)

	m := cfg.MazeConfig()
	assert.Equal(t, 4, m.NumObstacles)
	assert.Equal(t, 20, m.MinPathLength)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad seed", EnvSeed, "abc"},
		{"bad obstacles", EnvObstacles, "many"},
		{"negative obstacles", EnvObstacles, "-1"},
		{"spawn chance too high", EnvSpawnChance, "150"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Config{Obstacles: -1, MinPathLength: -1, SpawnChance: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obstacles")
	assert.Contains(t, err.Error(), "min path")
	assert.Contains(t, err.Error(), "spawn chance")
	assert.Contains(t, err.Error(), "player name")
}

func TestResolvedSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 77
	assert.Equal(t, int64(77), cfg.ResolvedSeed())

	cfg.Seed = 0
	assert.NotZero(t, cfg.ResolvedSeed())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "explore", StateExplore.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "victory", StateVictory.String())
	assert.Equal(t, "unknown", State(99).String())
}
