package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/types"
)

// InMemoryDBPath selects a non-persistent session store
const InMemoryDBPath = ":memory:"

// DefaultConfig returns a default configuration
func DefaultConfig() types.Config {
	return types.Config{
		Generator: types.GeneratorConfig{
			Locale:         locale.DefaultLocale,
			LocaleFallback: locale.DefaultLocale,
		},
		API: types.APIConfig{
			Host: "localhost",
			Port: 8086,
		},
		Storage: types.StorageConfig{
			DBPath: "./mirage.db",
		},
		Log: types.LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the effective configuration: defaults, then the JSON file at
// configPath (if not empty), then MIRAGE_* environment variables.
func Load(configPath string) (*types.Config, error) {
	var cfg *types.Config
	if configPath == "" {
		defaults := DefaultConfig()
		cfg = &defaults
	} else {
		loaded, err := LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Defaults and environment may carry relative paths too
	if err := resolveDBPath(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(configPath string) (*types.Config, error) {
	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := resolveDBPath(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveDBPath makes a file DB path absolute
func resolveDBPath(cfg *types.Config) error {
	if cfg.Storage.DBPath == "" || cfg.Storage.DBPath == InMemoryDBPath || filepath.IsAbs(cfg.Storage.DBPath) {
		return nil
	}
	absPath, err := filepath.Abs(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("failed to resolve DB path: %w", err)
	}
	cfg.Storage.DBPath = absPath
	return nil
}

// ApplyEnv overrides cfg with any MIRAGE_* variables set in the environment
func ApplyEnv(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Validate checks that the configuration parameters are valid
func Validate(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if _, err := locale.Tag(cfg.Generator.Locale); err != nil {
		return fmt.Errorf("generator locale: %w", err)
	}
	if _, err := locale.Tag(cfg.Generator.LocaleFallback); err != nil {
		return fmt.Errorf("generator locale_fallback: %w", err)
	}

	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return fmt.Errorf("API port must be between 1 and 65535, got %d", cfg.API.Port)
	}

	if cfg.Storage.DBPath == "" {
		return fmt.Errorf("storage db_path is required")
	}

	return nil
}

// SaveToFile saves configuration to a JSON file
func SaveToFile(cfg *types.Config, configPath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
