// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Gameplay constants. Resource caps bound every ledger mutation; the poll
// interval drives the AwaitingClear completion check.
const (
	MaxGold         = 99999
	MaxScore        = 9999999
	MaxLives        = 99
	MaxPlayerHealth = 100

	StartingGold  = 100
	StartingLives = 20

	CompletionPollInterval = 0.5  // seconds between enemies-remaining checks
	MaxDeltaTime           = 0.06 // cap for a single scheduler tick

	ScreenWidth  = 640
	ScreenHeight = 360
)

// Config holds the runtime options read from the environment.
type Config struct {
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	Seed      int64      `env:"SEED" envDefault:"0"`
	WaveFile  string     `env:"WAVE_FILE"`
	EnemyFile string     `env:"ENEMY_FILE"`
	TowerFile string     `env:"TOWER_FILE"`
	Telemetry bool       `env:"TELEMETRY" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
