// Package engine assembles a running Mirage instance from configuration:
// logger, locale set, session store and session manager.
package engine

import (
	"fmt"
	"os"

	"github.com/Project-Sylos/Mirage/internal/config"
	"github.com/Project-Sylos/Mirage/internal/db"
	"github.com/Project-Sylos/Mirage/internal/deprecation"
	"github.com/Project-Sylos/Mirage/internal/generator"
	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/locale/builtin"
	"github.com/Project-Sylos/Mirage/internal/logging"
	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/Project-Sylos/Mirage/internal/types"
	"github.com/sirupsen/logrus"
)

// Engine owns the long-lived resources of a Mirage process
type Engine struct {
	cfg     *types.Config
	db      *db.DB
	locales locale.Set
	manager *session.Manager
	log     *logrus.Logger
}

// New loads configuration from configPath (empty for defaults plus
// environment) and builds an Engine from it
func New(configPath string) (*Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return NewFromConfig(cfg, logger)
}

// NewFromConfig builds an Engine from an already validated configuration
func NewFromConfig(cfg *types.Config, logger *logrus.Logger) (*Engine, error) {
	locales, err := LoadLocales(cfg.Generator.LocaleDir)
	if err != nil {
		return nil, err
	}

	// Reject locale defaults the set cannot serve before touching storage
	for _, key := range []string{cfg.Generator.Locale, cfg.Generator.LocaleFallback} {
		if key != "" && !locales.Has(key) {
			return nil, fmt.Errorf("invalid generator config: %w", &locale.UnsupportedLocaleError{Locale: key})
		}
	}

	database, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"locales": locales.Keys(),
		"db_path": cfg.Storage.DBPath,
	}).Info("engine initialized")

	return &Engine{
		cfg:     cfg,
		db:      database,
		locales: locales,
		manager: session.NewManager(database, locales, cfg.Generator, logger),
		log:     logger,
	}, nil
}

// LoadLocales reads locale files from dir, or returns the built-in locales
// when dir is empty
func LoadLocales(dir string) (locale.Set, error) {
	if dir == "" {
		set, err := builtin.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in locales: %w", err)
		}
		return set, nil
	}

	set, err := locale.LoadFromFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load locales from %s: %w", dir, err)
	}
	return set, nil
}

// NewGenerator returns a standalone generator using the configured locale
// defaults and seed. Deprecation notices are logged.
func (e *Engine) NewGenerator() (*generator.Generator, error) {
	return generator.New(&generator.Options{
		Locales:        e.locales,
		Locale:         e.cfg.Generator.Locale,
		LocaleFallback: e.cfg.Generator.LocaleFallback,
		Seed:           e.cfg.Generator.Seed,
		Notifier:       deprecation.Log(e.log),
	})
}

// Sessions returns the session manager
func (e *Engine) Sessions() *session.Manager {
	return e.manager
}

// Locales returns the loaded locale set
func (e *Engine) Locales() locale.Set {
	return e.locales
}

// Config returns the current configuration
func (e *Engine) Config() *types.Config {
	return e.cfg
}

// Logger returns the process logger
func (e *Engine) Logger() *logrus.Logger {
	return e.log
}

// Close closes the database connection
func (e *Engine) Close() error {
	return e.db.Close()
}
