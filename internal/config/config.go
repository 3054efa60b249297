// Package config centralises configuration parsing for the tracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config captures runtime configuration values for the tracker.
type Config struct {
	DataDir     string  `toml:"data_dir"`
	Backend     string  `toml:"backend"`
	Namespace   string  `toml:"namespace"`
	WeightKg    float64 `toml:"weight_kg"`
	LogLevel    string  `toml:"log_level"`
	LogFormat   string  `toml:"log_format"` // text or json
	LogFile     string  `toml:"log_file"`   // empty logs to stderr only
	LogToStderr bool    `toml:"log_to_stderr"`
}

// Load builds Config from defaults, then the optional TOML file named by
// FITPULSE_CONFIG, then FITPULSE_* environment variables.
func Load() (Config, error) {
	cfg := Config{
		DataDir:   defaultDataDir(),
		Backend:   BackendSQLite,
		Namespace: "workout_tracker",
		WeightKg:  70,
		LogLevel:  "warn",
		LogFormat: "text",
	}

	if path := getEnv("FITPULSE_CONFIG", ""); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	cfg.DataDir = getEnv("FITPULSE_DATA_DIR", cfg.DataDir)
	cfg.Backend = strings.ToLower(getEnv("FITPULSE_BACKEND", cfg.Backend))
	cfg.Namespace = getEnv("FITPULSE_NAMESPACE", cfg.Namespace)
	cfg.WeightKg = getFloatEnv("FITPULSE_WEIGHT_KG", cfg.WeightKg)
	cfg.LogLevel = getEnv("FITPULSE_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(getEnv("FITPULSE_LOG_FORMAT", cfg.LogFormat))
	cfg.LogFile = getEnv("FITPULSE_LOG_FILE", cfg.LogFile)
	cfg.LogToStderr = getBoolEnv("FITPULSE_LOG_TO_STDERR", cfg.LogToStderr)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no component can run with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Backend != BackendMemory && c.DataDir == "" {
		return fmt.Errorf("config: data dir is required for the %s backend", c.Backend)
	}
	if c.WeightKg <= 0 {
		return fmt.Errorf("config: weight must be > 0, got %v", c.WeightKg)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

// SQLitePath is the database file used by the sqlite backend.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "fitpulse.db")
}

// FileDir is the directory used by the file backend.
func (c Config) FileDir() string {
	return filepath.Join(c.DataDir, "store")
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".fitpulse")
	}
	return ".fitpulse"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
