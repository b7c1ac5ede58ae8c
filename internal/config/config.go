package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"vedtoob/internal/catalog"
)

// Config holds all configuration for the application.
type Config struct {
	APIBaseURL      string
	ResolveStrategy catalog.Strategy
	ConverterPath   string
	WrapColumns     int
	Style           string
	ColorMode       string
	LogLevel        slog.Level
	LogFormat       string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or one of its parents, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIBaseURL:    strings.TrimRight(getEnv("VEDTOOB_API_URL", "https://api.boot.dev"), "/"),
		ConverterPath: getEnv("VEDTOOB_CONVERTER", "pandoc"),
		Style:         getEnv("VEDTOOB_STYLE", "monokai"),
		ColorMode:     strings.ToLower(getEnv("VEDTOOB_COLOR", "auto")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("VEDTOOB_API_URL must be an absolute URL, got %q", cfg.APIBaseURL)
	}

	strategy, err := catalog.ParseStrategy(getEnv("VEDTOOB_RESOLVE_STRATEGY", string(catalog.StrategyLookup)))
	if err != nil {
		return nil, fmt.Errorf("VEDTOOB_RESOLVE_STRATEGY is invalid: %w", err)
	}
	cfg.ResolveStrategy = strategy

	columns, err := strconv.Atoi(getEnv("VEDTOOB_COLUMNS", "80"))
	if err != nil {
		return nil, fmt.Errorf("VEDTOOB_COLUMNS must be a valid integer: %w", err)
	}
	if columns <= 0 {
		return nil, fmt.Errorf("VEDTOOB_COLUMNS must be greater than 0")
	}
	cfg.WrapColumns = columns

	switch cfg.ColorMode {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("VEDTOOB_COLOR must be one of auto, always, never, got %q", cfg.ColorMode)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "warn"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
