package app

import (
	"errors"
	"fmt"
	"log/slog"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ItemsPath  string // items file, or directory of .txt files
	LayoutPath string // optional .hcl layout file
	OutputDir  string
	Background string // overrides the layout's background image

	Cards       int
	Seed        uint64 // 0 means derive from the clock
	MaxAttempts int

	LogFormat string
	LogLevel  slog.Level
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ItemsPath == "" {
		return nil, errors.New("ItemsPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}
	if cfg.Cards < 1 {
		return nil, fmt.Errorf("Cards must be at least 1, got %d", cfg.Cards)
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("MaxAttempts must be at least 1, got %d", cfg.MaxAttempts)
	}
	return &cfg, nil
}
