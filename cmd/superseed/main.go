// Package main is the entry point for Superseed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/superseed/internal/devtools"
	"github.com/samdwyer/superseed/internal/game"
	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/maze"
	"github.com/samdwyer/superseed/internal/telemetry"
)

func main() {
	dump := flag.Int("dump", 0, "print `n` generated mazes and exit")
	seed := flag.Int64("seed", 0, "world seed, overrides "+game.EnvSeed)
	logFile := flag.String("log", "superseed.log", "log file used while the game is running")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *dump > 0 {
		if err := dumpMazes(ctx, os.Stdout, cfg, *dump); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	// The terminal belongs to the game, so logs go to a file.
	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer out.Close()
	logger := telemetry.NewLogger(out, cfg.LogVerbosity)

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	g, err := game.New(cfg, catalog, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// dumpMazes prints n mazes generated from the configured seed.
func dumpMazes(ctx context.Context, w io.Writer, cfg game.Config, n int) error {
	logger := telemetry.NewLogger(os.Stderr, cfg.LogVerbosity)
	seed := cfg.ResolvedSeed()
	logger.V(1).Info("dumping mazes", "seed", seed, "count", n)
	rng := rand.New(rand.NewSource(seed))
	fmt.Fprintf(w, "seed %d\n", seed)
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = devtools.IsTerminal(int(f.Fd()))
	}

	for i := 0; i < n; i++ {
		m, err := maze.New(cfg.MazeConfig(), rng, maze.WithLogger(logger))
		if err != nil {
			return err
		}
		m.Generate(ctx)
		fmt.Fprintf(w, "maze %d\n", i+1)
		if err := devtools.DumpMaze(w, m, colorize); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
