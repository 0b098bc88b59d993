package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment holds the WORKOUT_VIEWER_* overrides
type Environment struct {
	DBPath       string `env:"WORKOUT_VIEWER_DB_PATH"`
	BinDir       string `env:"WORKOUT_VIEWER_BIN_DIR"`
	WorkoutsFile string `env:"WORKOUT_VIEWER_WORKOUTS_FILE"`
	FTP          int    `env:"WORKOUT_VIEWER_FTP"`
	Debug        bool   `env:"WORKOUT_VIEWER_DEBUG" envDefault:"false"`
}

// LoadEnvironment reads overrides from the process environment
func LoadEnvironment() (*Environment, error) {
	var cfg Environment
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// ParseEnvironment reads overrides from the given variables instead of the process environment
func ParseEnvironment(vars map[string]string) (*Environment, error) {
	var cfg Environment
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// WorkoutsFileOr returns the override or fallback
func (e *Environment) WorkoutsFileOr(fallback string) string {
	return firstNonEmpty(e.WorkoutsFile, fallback)
}

// DBPathOr returns the override or fallback
func (e *Environment) DBPathOr(fallback string) string {
	return firstNonEmpty(e.DBPath, fallback)
}

// BinDirOr returns the override or fallback
func (e *Environment) BinDirOr(fallback string) string {
	return firstNonEmpty(e.BinDir, fallback)
}

// FTPOr returns the clamped override or fallback
func (e *Environment) FTPOr(fallback int) int {
	if e.FTP > 0 {
		return ClampFTP(e.FTP)
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
