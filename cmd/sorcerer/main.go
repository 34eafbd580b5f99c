// Package main is the entry point for Sorcerer.
package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/samdwyer/sorcerer/internal/config"
	"github.com/samdwyer/sorcerer/internal/game"
	"github.com/samdwyer/sorcerer/internal/gamedata"
	"github.com/samdwyer/sorcerer/internal/telemetry"
	"github.com/samdwyer/sorcerer/internal/timer"
	"github.com/samdwyer/sorcerer/internal/ui"
)

func main() {
	// Load .env for local development, then the environment.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	content, err := gamedata.LoadContent(cfg.DeckFile)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}
	// Fail before taking over the terminal if the content cannot build a run.
	if _, err := content.Setup(); err != nil {
		log.Fatalf("Invalid game data: %v", err)
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	newGame := func(p game.Presenter, timers timer.Scheduler) (*game.Game, error) {
		setup, err := content.Setup()
		if err != nil {
			return nil, err
		}
		g, err := game.New(cfg.Game, setup, game.Options{
			Presenter: p,
			Scheduler: timers,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Printf("new run %s", g.RunID())
		return g, nil
	}

	app := ui.NewApp(screen, newGame, logger)
	if err := app.Run(ctx); err != nil {
		screen.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// openLog returns a logger writing to path, or one that discards everything
// when path is empty.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "sorcerer ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
