package config

import (
	"os"
	"testing"
)

// TestLoadDefaults tests the configuration without any environment
func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHESS_TRAINER_LOG_LEVEL", "")
	t.Setenv("CHESS_TRAINER_DEBUG", "")
	t.Setenv("CHESS_TRAINER_DURATION", "")
	// Setenv registers the restore; the variable must be absent, not empty.
	t.Setenv("CHESS_TRAINER_ARCHIVE", "")
	os.Unsetenv("CHESS_TRAINER_ARCHIVE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultDuration != DefaultDuration {
		t.Errorf("DefaultDuration = %d, want %d", cfg.DefaultDuration, DefaultDuration)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ArchivePath == "" {
		t.Error("ArchivePath should default to a non-empty path")
	}
}

// TestLoadLogLevel tests the log level overrides
func TestLoadLogLevel(t *testing.T) {
	t.Setenv("CHESS_TRAINER_LOG_LEVEL", "warn")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}

	t.Setenv("CHESS_TRAINER_DEBUG", "1")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Debug flag should force debug level, got %q", cfg.LogLevel)
	}
}

// TestLoadDuration tests the duration override and its bounds
func TestLoadDuration(t *testing.T) {
	t.Setenv("CHESS_TRAINER_DURATION", "45")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultDuration != 45 {
		t.Errorf("DefaultDuration = %d, want 45", cfg.DefaultDuration)
	}

	t.Setenv("CHESS_TRAINER_DURATION", "3")
	if _, err := Load(); err == nil {
		t.Error("Duration below the minimum should fail")
	}

	t.Setenv("CHESS_TRAINER_DURATION", "90")
	if _, err := Load(); err == nil {
		t.Error("Duration above the maximum should fail")
	}

	t.Setenv("CHESS_TRAINER_DURATION", "soon")
	if _, err := Load(); err == nil {
		t.Error("Non-numeric duration should fail")
	}
}

// TestLoadArchivePath tests the archive override and disabling
func TestLoadArchivePath(t *testing.T) {
	t.Setenv("CHESS_TRAINER_ARCHIVE", "/tmp/custom.db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ArchivePath != "/tmp/custom.db" {
		t.Errorf("ArchivePath = %q, want /tmp/custom.db", cfg.ArchivePath)
	}

	// An explicitly empty value disables the archive.
	t.Setenv("CHESS_TRAINER_ARCHIVE", "")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ArchivePath != "" {
		t.Errorf("Empty archive variable should disable archiving, got %q", cfg.ArchivePath)
	}
}
