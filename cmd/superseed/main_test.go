package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/superseed/internal/game"
)

func TestDumpMazesSeeded(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 5

	var a, b bytes.Buffer
	require.NoError(t, dumpMazes(context.Background(), &a, cfg, 2))
	require.NoError(t, dumpMazes(context.Background(), &b, cfg, 2))

	assert.Equal(t, a.String(), b.String())
	assert.True(t, strings.HasPrefix(a.String(), "seed 5\n"))
	assert.Contains(t, a.String(), "maze 1\n")
	assert.Contains(t, a.String(), "maze 2\n")
}

func TestDumpMazesUnseeded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpMazes(context.Background(), &buf, game.DefaultConfig(), 1))
	assert.False(t, strings.HasPrefix(buf.String(), "seed 0\n"), "seed 0 picks a clock-based seed")
}
