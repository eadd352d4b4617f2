// Package generator provides the Generator facade: one seeded random source
// and one locale resolver, plus the value modules built on them.
package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/Project-Sylos/Mirage/internal/deprecation"
	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/modules"
	"github.com/Project-Sylos/Mirage/internal/random"
)

// DefaultLocale is used for the primary and fallback locale when unset.
const DefaultLocale = locale.DefaultLocale

// ErrConfiguration is wrapped by ConfigurationError.
var ErrConfiguration = errors.New("invalid generator configuration")

// ConfigurationError reports options a Generator cannot be built from.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Options configures a new Generator.
type Options struct {
	// Locales is required and must have at least one entry.
	Locales locale.Set
	// Locale and LocaleFallback default to DefaultLocale.
	Locale         string
	LocaleFallback string
	// Seed is installed after construction when set.
	Seed random.Seed
	// Source replaces the default entropy-seeded source.
	Source *random.Source
	// Notifier receives deprecation notices; nil discards them.
	Notifier deprecation.Notifier
}

// Generator produces reproducible values. It is not safe for concurrent use;
// use Fork or Derive to hand independent instances to other goroutines.
type Generator struct {
	resolver *locale.Resolver
	source   *random.Source
	refDate  RefDateFunc
	notify   deprecation.Notifier

	person   *modules.Person
	location *modules.Location
	number   *modules.Number
	date     *modules.Date
	helpers  *modules.Helpers
}

// New validates opts and builds a Generator.
func New(opts *Options) (*Generator, error) {
	if opts == nil {
		return nil, &ConfigurationError{Reason: "options with at least one entry in locales must be provided"}
	}
	if len(opts.Locales) == 0 {
		return nil, &ConfigurationError{Reason: "at least one entry in locales must be provided"}
	}

	primary := opts.Locale
	if primary == "" {
		primary = DefaultLocale
	}
	fallback := opts.LocaleFallback
	if fallback == "" {
		fallback = DefaultLocale
	}

	notify := opts.Notifier
	if notify == nil {
		notify = deprecation.Discard
	}

	resolver, err := locale.NewResolver(opts.Locales, primary, fallback, notify)
	if err != nil {
		return nil, fmt.Errorf("failed to select locales: %w", err)
	}

	source := opts.Source
	if source == nil {
		source = random.New(opts.Seed)
	} else if !opts.Seed.IsZero() {
		source.Seed(opts.Seed)
	}

	return build(resolver, source, time.Now, notify), nil
}

func build(resolver *locale.Resolver, source *random.Source, refDate RefDateFunc, notify deprecation.Notifier) *Generator {
	g := &Generator{
		resolver: resolver,
		source:   source,
		refDate:  refDate,
		notify:   notify,
	}
	g.person = modules.NewPerson(g)
	g.location = modules.NewLocation(g)
	g.number = modules.NewNumber(g)
	g.date = modules.NewDate(g)
	g.helpers = modules.NewHelpers(g)
	return g
}

// Random returns the seeded source shared by every module of this generator.
func (g *Generator) Random() *random.Source {
	return g.source
}

// Definitions returns the locale resolver.
func (g *Generator) Definitions() *locale.Resolver {
	return g.resolver
}

// Locales returns the shared locale set.
func (g *Generator) Locales() locale.Set {
	return g.resolver.Locales()
}

func (g *Generator) Locale() string {
	return g.resolver.Primary()
}

// SetLocale selects the primary locale. Unknown keys fail with
// *locale.UnsupportedLocaleError and leave the selection unchanged.
func (g *Generator) SetLocale(key string) error {
	return g.resolver.SetPrimary(key)
}

func (g *Generator) LocaleFallback() string {
	return g.resolver.Fallback()
}

// SetLocaleFallback selects the fallback locale, with the same rules as SetLocale.
func (g *Generator) SetLocaleFallback(key string) error {
	return g.resolver.SetFallback(key)
}

// Seed installs seed (entropy when zero) and returns the installed seed.
//
// Generated values depend on both the seed and the number of calls made
// since it was set. Logging the returned seed is enough to replay a run.
func (g *Generator) Seed(seed random.Seed) random.Seed {
	return g.source.Seed(seed)
}

// SeedRandom installs an entropy seed and returns it.
func (g *Generator) SeedRandom() random.Seed {
	return g.source.SeedRandom()
}

// Fork clones the generator including its random state. It consumes no
// draws: the fork produces the same values as the original would, given the
// same calls in the same order. Afterwards the two are fully independent.
//
//	g.Seed(random.Scalar(42))
//	g.Fork().Person().FirstName() // same as below
//	g.Person().FirstName()
func (g *Generator) Fork() *Generator {
	return build(g.resolver.Clone(), g.source.Fork(), g.refDate, g.notify)
}

// Derive consumes exactly one value from this generator to seed a new one.
// The derived generator is reproducible from the parent's seed, and however
// many values are drawn from it, the parent's later output is unaffected.
//
//	g.Seed(random.Scalar(42))
//	child := g.Derive()     // 1st draw
//	child.Person().FullName()
//	g.Number().Int(0, 10)   // 2nd draw, same as without the child's calls
func (g *Generator) Derive() *Generator {
	seed := g.source.Next(random.Bounds{Min: 0, Max: random.MaxSeed})
	return build(g.resolver.Clone(), random.New(random.Scalar(seed)), g.refDate, g.notify)
}

func (g *Generator) Person() *modules.Person {
	return g.person
}

func (g *Generator) Location() *modules.Location {
	return g.location
}

func (g *Generator) Number() *modules.Number {
	return g.number
}

func (g *Generator) Date() *modules.Date {
	return g.date
}

func (g *Generator) Helpers() *modules.Helpers {
	return g.helpers
}

// Name returns the person module.
//
// Deprecated: use Person.
func (g *Generator) Name() *modules.Person {
	g.notify(deprecation.Notice{
		Deprecated: "generator.Name",
		Proposed:   "generator.Person",
		Since:      "8.0",
		Until:      "10.0",
	})
	return g.person
}

// Address returns the location module.
//
// Deprecated: use Location.
func (g *Generator) Address() *modules.Location {
	g.notify(deprecation.Notice{
		Deprecated: "generator.Address",
		Proposed:   "generator.Location",
		Since:      "8.0",
		Until:      "10.0",
	})
	return g.location
}
