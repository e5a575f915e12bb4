// Package main is the entry point for Code Kingdoms.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/codekingdoms/internal/assets"
	"github.com/samdwyer/codekingdoms/internal/assistant"
	"github.com/samdwyer/codekingdoms/internal/clock"
	"github.com/samdwyer/codekingdoms/internal/config"
	"github.com/samdwyer/codekingdoms/internal/game"
	"github.com/samdwyer/codekingdoms/internal/gamedata"
	"github.com/samdwyer/codekingdoms/internal/telemetry"
	"github.com/samdwyer/codekingdoms/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	sessionID := uuid.NewString()
	ctx := context.Background()

	logger, closer, err := telemetry.NewLogger(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx, sessionID, logger)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "err", err)
				}
			}()
		}
	}

	// Bad kingdom data is fatal before the terminal is taken over.
	registry, err := gamedata.LoadKingdomRegistry(cfg.CurriculumPath)
	if err != nil {
		log.Fatalf("Failed to load kingdoms: %v", err)
	}

	g, err := game.New(game.Config{
		Registry:  registry,
		Art:       assets.LoadProvider(logger),
		Assistant: newAssistant(cfg),
		Clock:     clock.Real{},
		Logger:    logger,
		FPS:       cfg.FPS,
		SessionID: sessionID,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	runErr := g.Run(ctx, screen)
	screen.Close()
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// newAssistant builds the hint launcher. CODEKINGDOMS_ASSISTANT_CMD may carry
// extra arguments; the prompt is always appended last.
func newAssistant(cfg config.Config) *assistant.Launcher {
	fields := strings.Fields(cfg.AssistantCommand)
	if !cfg.Hints || len(fields) == 0 {
		return assistant.New("")
	}
	return assistant.New(fields[0], fields[1:]...)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Build headers from the API key; an unexpanded reference in .env does not work.
	apiKey := os.Getenv("HONEYCOMB_CODEKINGDOMS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CODEKINGDOMS_DATASET")
	if dataset == "" {
		dataset = "codekingdoms"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
