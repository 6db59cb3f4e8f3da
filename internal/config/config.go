// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the game reads at startup. Values come from
// environment variables, with a .env file as a development convenience.
type Config struct {
	// Seed drives dungeon generation and spawns. Zero means pick one.
	Seed int64 `env:"TOWERRAK_SEED" envDefault:"0"`

	// Render selects the tile renderer: "sprites" for half-block pixel art,
	// "glyphs" for plain runes. Sprites fall back to glyphs when the art
	// directory is missing.
	Render string `env:"TOWERRAK_RENDER" envDefault:"sprites"`

	// DataDir is the root of the on-disk asset tree (data/graphics/...).
	DataDir string `env:"TOWERRAK_DATA_DIR" envDefault:"data"`

	MapWidth  int `env:"TOWERRAK_MAP_WIDTH" envDefault:"60"`
	MapHeight int `env:"TOWERRAK_MAP_HEIGHT" envDefault:"40"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	// LogFile receives diagnostics; the terminal itself belongs to the game.
	LogFile string `env:"LOG_FILE" envDefault:"towerrak.log"`

	HoneycombAPIKey  string `env:"HONEYCOMB_TOWERRAK_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_TOWERRAK_DATASET" envDefault:"towerrak"`
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	// Not fatal - env vars might be set directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
