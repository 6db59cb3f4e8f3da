// Package main is the entry point for Tower of Rak.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/abromley/towerrak/internal/config"
	"github.com/abromley/towerrak/internal/game"
	"github.com/abromley/towerrak/internal/logger"
	"github.com/abromley/towerrak/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal belongs to the game, so diagnostics go to a file.
	logger.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv(cfg)

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(game.Options{
		Seed:       cfg.Seed,
		RenderMode: cfg.Render,
		DataDir:    cfg.DataDir,
		MapWidth:   cfg.MapWidth,
		MapHeight:  cfg.MapHeight,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(cfg config.Config) {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers here - the .env file may have an unexpanded
	// variable reference that doesn't work as-is
	if cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s",
				cfg.HoneycombAPIKey, cfg.HoneycombDataset))
	}
}
