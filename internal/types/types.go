package types

import (
	"time"

	"github.com/Project-Sylos/Mirage/internal/random"
)

// Config represents the complete configuration for Mirage
type Config struct {
	Generator GeneratorConfig `json:"generator"`
	API       APIConfig       `json:"api"`
	Storage   StorageConfig   `json:"storage"`
	Log       LogConfig       `json:"log"`
}

// GeneratorConfig holds the defaults applied to new generators
type GeneratorConfig struct {
	Locale         string      `json:"locale" env:"MIRAGE_LOCALE"`
	LocaleFallback string      `json:"locale_fallback" env:"MIRAGE_LOCALE_FALLBACK"`
	Seed           random.Seed `json:"seed" env:"MIRAGE_SEED"`
	LocaleDir      string      `json:"locale_dir,omitempty" env:"MIRAGE_LOCALE_DIR"` // empty = built-in locales
}

// APIConfig represents the HTTP API configuration
type APIConfig struct {
	Host string `json:"host" env:"MIRAGE_API_HOST"`
	Port int    `json:"port" env:"MIRAGE_API_PORT"`
}

// StorageConfig represents the session store configuration
type StorageConfig struct {
	DBPath string `json:"db_path" env:"MIRAGE_DB_PATH"`
}

// LogConfig represents the logger configuration
type LogConfig struct {
	Level  string `json:"level" env:"MIRAGE_LOG_LEVEL"`
	Format string `json:"format" env:"MIRAGE_LOG_FORMAT"` // "text" or "json"
}

// Session is the persisted state of one named generator.
// Seed plus Draws reproduces the generator's random state exactly.
type Session struct {
	ID             string      `json:"id" db:"id"`
	ParentID       string      `json:"parent_id,omitempty" db:"parent_id"`
	Origin         string      `json:"origin" db:"origin"`
	Seed           random.Seed `json:"seed" db:"seed"`
	Draws          uint64      `json:"draws" db:"draws"`
	Locale         string      `json:"locale" db:"locale"`
	LocaleFallback string      `json:"locale_fallback" db:"locale_fallback"`
	Checksum       string      `json:"checksum" db:"checksum"` // fingerprint of the random state at Draws
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// LocaleInfo describes one configured locale
type LocaleInfo struct {
	Key   string `json:"key"`
	Tag   string `json:"tag"`
	Title string `json:"title,omitempty"`
}

// APIResponse represents a generic API response
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Session origin constants
const (
	OriginSeed   = "seed"
	OriginFork   = "fork"
	OriginDerive = "derive"
)
