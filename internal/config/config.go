// Package config resolves runtime settings from the environment.
// A .env file in the working directory is honoured when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// Session duration bounds in seconds, matching the duration slider.
	MinDuration     = 5
	MaxDuration     = 60
	DefaultDuration = 30

	defaultArchiveFile = "chess-trainer.db"
)

type Config struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", "error").
	LogLevel string

	// DefaultDuration seeds the duration slider, in seconds.
	DefaultDuration int

	// ArchivePath is the bbolt file holding finished sessions.
	// Empty disables the archive.
	ArchivePath string
}

// Load reads configuration from CHESS_TRAINER_* environment variables,
// loading a .env file first if one exists in the working directory.
func Load() (*Config, error) {
	// Missing .env is not an error; a malformed one is.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:        "info",
		DefaultDuration: DefaultDuration,
		ArchivePath:     defaultArchivePath(),
	}

	if v := os.Getenv("CHESS_TRAINER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if os.Getenv("CHESS_TRAINER_DEBUG") == "1" {
		cfg.LogLevel = "debug"
	}

	if v := os.Getenv("CHESS_TRAINER_DURATION"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse CHESS_TRAINER_DURATION %q: %w", v, err)
		}
		if seconds < MinDuration || seconds > MaxDuration {
			return nil, fmt.Errorf("CHESS_TRAINER_DURATION %d out of range [%d,%d]",
				seconds, MinDuration, MaxDuration)
		}
		cfg.DefaultDuration = seconds
	}

	if v, ok := os.LookupEnv("CHESS_TRAINER_ARCHIVE"); ok {
		// Explicit empty value disables archiving.
		cfg.ArchivePath = v
	}

	return cfg, nil
}

func defaultArchivePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultArchiveFile
	}
	return filepath.Join(dir, "chess-trainer", defaultArchiveFile)
}
