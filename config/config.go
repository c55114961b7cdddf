// Package config reads the environment the todo binary runs in.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "TODO_LOG_LEVEL"
)

// ErrMissingDatabaseURL is returned when DATABASE_URL is unset or blank.
var ErrMissingDatabaseURL = errors.New(EnvDatabaseURL + " must be set")

type Config struct {
	DatabaseURL string
	LogLevel    zapcore.Level
}

// Load reads optional .env files and then the process environment.
// Variables already present in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DatabaseURL: strings.TrimSpace(getenv(EnvDatabaseURL)),
		LogLevel:    zapcore.WarnLevel,
	}
	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}

	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
