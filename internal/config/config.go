// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	minFPS = 1
	maxFPS = 240
)

// Config holds runtime options for the game.
type Config struct {
	// FPS is the fixed frame rate of the game loop.
	FPS int `env:"CODEKINGDOMS_FPS" envDefault:"60"`

	// LogPath is the file structured logs are written to. Empty discards logs,
	// since the terminal itself is owned by the renderer.
	LogPath  string `env:"CODEKINGDOMS_LOG_PATH"`
	LogLevel string `env:"CODEKINGDOMS_LOG_LEVEL" envDefault:"info"`

	// AssistantCommand is the hint helper executable, launched with the
	// hint prompt as its last argument.
	AssistantCommand string `env:"CODEKINGDOMS_ASSISTANT_CMD" envDefault:"codekingdoms-assistant"`
	Hints            bool   `env:"CODEKINGDOMS_HINTS" envDefault:"true"`

	// CurriculumPath optionally replaces the embedded kingdom data.
	CurriculumPath string `env:"CODEKINGDOMS_CURRICULUM_PATH"`

	Telemetry bool `env:"CODEKINGDOMS_TELEMETRY" envDefault:"true"`
}

// Load parses the environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		FPS:              60,
		LogLevel:         "info",
		AssistantCommand: "codekingdoms-assistant",
		Hints:            true,
		Telemetry:        true,
	}
}

// Validate checks option ranges.
func (c Config) Validate() error {
	if c.FPS < minFPS || c.FPS > maxFPS {
		return fmt.Errorf("invalid fps %d: must be between %d and %d", c.FPS, minFPS, maxFPS)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
