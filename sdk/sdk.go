// Package sdk is the public API of Mirage: reproducible generators over
// locale data, plus an embeddable runtime with persisted sessions.
package sdk

import (
	"fmt"

	"github.com/Project-Sylos/Mirage/internal/deprecation"
	"github.com/Project-Sylos/Mirage/internal/engine"
	"github.com/Project-Sylos/Mirage/internal/generator"
	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/locale/builtin"
	"github.com/Project-Sylos/Mirage/internal/random"
	"github.com/Project-Sylos/Mirage/internal/session"
	"github.com/Project-Sylos/Mirage/internal/types"
)

type (
	// Generator produces reproducible values from a seed and a locale pair
	Generator = generator.Generator
	// Options configures NewGenerator
	Options = generator.Options
	// Seed is a scalar or sequence seed
	Seed = random.Seed
	// Bounds is an inclusive integer range
	Bounds = random.Bounds
	// LocaleSet maps locale keys to their definitions
	LocaleSet = locale.Set
	// LocaleDefinition is the data of one locale
	LocaleDefinition = locale.Definition
	// Notice describes a deprecated access path
	Notice = deprecation.Notice
	// Session is the persisted state of a session
	Session = types.Session
)

// Error sentinels, for use with errors.Is
var (
	ErrConfiguration     = generator.ErrConfiguration
	ErrUnsupportedLocale = locale.ErrUnsupportedLocale
	ErrMissingLocaleData = locale.ErrMissingLocaleData
	ErrSessionNotFound   = session.ErrNotFound
)

// Scalar returns a single-value seed
func Scalar(v int64) Seed {
	return random.Scalar(v)
}

// Sequence returns a multi-value seed
func Sequence(values ...int64) Seed {
	return random.Sequence(values...)
}

// NewGenerator creates a generator from explicit options
func NewGenerator(opts *Options) (*Generator, error) {
	return generator.New(opts)
}

// BuiltinLocales returns the locales shipped with Mirage. The set is shared
// and must not be modified.
func BuiltinLocales() (LocaleSet, error) {
	return builtin.Load()
}

// NewForLocale creates a generator for a built-in locale, falling back to
// English for anything the locale does not define
func NewForLocale(key string) (*Generator, error) {
	locales, err := builtin.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in locales: %w", err)
	}

	return generator.New(&generator.Options{
		Locales:        locales,
		Locale:         key,
		LocaleFallback: locale.DefaultLocale,
	})
}

// Mirage is an embeddable runtime: configuration, locales and a persistent
// session manager
type Mirage struct {
	impl *engine.Engine
}

// New creates a new Mirage instance using the specified config file.
// An empty path uses defaults and MIRAGE_* environment variables.
func New(configPath string) (*Mirage, error) {
	impl, err := engine.New(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Mirage: %w", err)
	}

	return &Mirage{
		impl: impl,
	}, nil
}

// NewWithDefaults creates a new Mirage instance using default configuration
func NewWithDefaults() (*Mirage, error) {
	return New("")
}

// NewGenerator returns a standalone generator using the configured defaults
func (m *Mirage) NewGenerator() (*Generator, error) {
	return m.impl.NewGenerator()
}

// Sessions returns the persistent session manager
func (m *Mirage) Sessions() *session.Manager {
	return m.impl.Sessions()
}

// Locales returns the loaded locale set
func (m *Mirage) Locales() LocaleSet {
	return m.impl.Locales()
}

// Close closes the session store.
// Always call this method during graceful shutdown.
func (m *Mirage) Close() error {
	return m.impl.Close()
}

// GetConfig returns the current configuration
func (m *Mirage) GetConfig() *types.Config {
	return m.impl.Config()
}

// Engine returns the underlying runtime, used by the API server
func (m *Mirage) Engine() *engine.Engine {
	return m.impl
}
