package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/Project-Sylos/Mirage/internal/deprecation"
	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/random"
)

func testLocales() locale.Set {
	return locale.Set{
		"en": locale.Definition{
			"title": "English",
			"person": map[string]any{
				"first_name": []any{"Ada", "Grace", "Alan", "Linus", "Barbara"},
				"last_name":  []any{"Lovelace", "Hopper", "Turing", "Torvalds", "Liskov"},
			},
			"location": map[string]any{
				"city_name": []any{"Springfield", "Riverside", "Fairview"},
				"country":   []any{"Canada", "Norway"},
			},
		},
		"de": locale.Definition{
			"title": "German",
			"person": map[string]any{
				"first_name": []any{"Hans", "Greta", "Jonas"},
			},
		},
	}
}

func newTestGenerator(t *testing.T, seed random.Seed) *Generator {
	t.Helper()
	g, err := New(&Options{Locales: testLocales(), Seed: seed})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

// TestNew tests construction validation and defaults
func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		opts       *Options
		wantConfig bool
		wantLocale bool
	}{
		{name: "nil options", opts: nil, wantConfig: true},
		{name: "empty locales", opts: &Options{Locales: locale.Set{}}, wantConfig: true},
		{name: "defaults", opts: &Options{Locales: testLocales()}},
		{name: "explicit locales", opts: &Options{Locales: testLocales(), Locale: "de", LocaleFallback: "en"}},
		{name: "unknown primary", opts: &Options{Locales: testLocales(), Locale: "fr"}, wantLocale: true},
		{name: "unknown fallback", opts: &Options{Locales: testLocales(), LocaleFallback: "fr"}, wantLocale: true},
		{name: "default locale missing", opts: &Options{Locales: locale.Set{"de": locale.Definition{}}}, wantLocale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.opts)
			switch {
			case tt.wantConfig:
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) || !errors.Is(err, ErrConfiguration) {
					t.Errorf("New() error = %v, want ConfigurationError", err)
				}
			case tt.wantLocale:
				if !errors.Is(err, locale.ErrUnsupportedLocale) {
					t.Errorf("New() error = %v, want ErrUnsupportedLocale", err)
				}
			default:
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				wantLocale := tt.opts.Locale
				if wantLocale == "" {
					wantLocale = DefaultLocale
				}
				if g.Locale() != wantLocale {
					t.Errorf("Locale() = %s, want %s", g.Locale(), wantLocale)
				}
				if g.LocaleFallback() != DefaultLocale {
					t.Errorf("LocaleFallback() = %s, want %s", g.LocaleFallback(), DefaultLocale)
				}
			}
		})
	}
}

// TestNewWithSource tests that a supplied source is used and seeded
func TestNewWithSource(t *testing.T) {
	src := random.New(random.Scalar(1))
	g, err := New(&Options{Locales: testLocales(), Source: src, Seed: random.Scalar(42)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.Random() != src {
		t.Errorf("Random() should return the supplied source")
	}
	if v, _ := src.Installed().Value(); v != 42 {
		t.Errorf("Installed seed = %d, want 42", v)
	}
}

// TestSeedReplay reseeds with 42 and replays ten bounded draws
func TestSeedReplay(t *testing.T) {
	g := newTestGenerator(t, random.Seed{})
	bounds := random.Bounds{Min: 0, Max: 9}

	g.Seed(random.Scalar(42))
	first := make([]int64, 10)
	for i := range first {
		first[i] = g.Random().Next(bounds)
	}

	g.Seed(random.Scalar(42))
	for i, want := range first {
		if got := g.Random().Next(bounds); got != want {
			t.Errorf("Draw %d after reseed = %d, want %d", i, got, want)
		}
	}
}

// TestSeedRandomRoundTrip tests that the returned seed reproduces the run
func TestSeedRandomRoundTrip(t *testing.T) {
	g := newTestGenerator(t, random.Seed{})
	seed := g.SeedRandom()
	first, err := g.Person().FullName()
	if err != nil {
		t.Fatalf("FullName() error = %v", err)
	}

	g.Seed(seed)
	second, err := g.Person().FullName()
	if err != nil {
		t.Fatalf("FullName() error = %v", err)
	}
	if first != second {
		t.Errorf("FullName() after reseed = %s, want %s", second, first)
	}
}

// TestFork tests that a fork replays the original and is independent afterwards
func TestFork(t *testing.T) {
	g := newTestGenerator(t, random.Scalar(7))
	g.Random().Uint64()

	fork := g.Fork()
	if fork.Random().Draws() != g.Random().Draws() {
		t.Errorf("Fork draws = %d, want %d", fork.Random().Draws(), g.Random().Draws())
	}

	for i := 0; i < 20; i++ {
		want, err := g.Person().FirstName()
		if err != nil {
			t.Fatalf("FirstName() error = %v", err)
		}
		got, err := fork.Person().FirstName()
		if err != nil {
			t.Fatalf("FirstName() error = %v", err)
		}
		if got != want {
			t.Errorf("Fork value %d = %s, want %s", i, got, want)
		}
	}

	// Locale changes on the fork stay on the fork
	if err := fork.SetLocale("de"); err != nil {
		t.Fatalf("SetLocale() error = %v", err)
	}
	if g.Locale() != DefaultLocale {
		t.Errorf("Original locale = %s, want %s", g.Locale(), DefaultLocale)
	}

	before := g.Random().Draws()
	fork.Random().Uint64()
	if g.Random().Draws() != before {
		t.Errorf("Drawing from the fork advanced the original")
	}
}

// TestForkKeepsRefDate tests that a fork inherits the reference-date provider
func TestForkKeepsRefDate(t *testing.T) {
	g := newTestGenerator(t, random.Scalar(7))
	ref := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := g.SetDefaultRefDate(ref); err != nil {
		t.Fatalf("SetDefaultRefDate() error = %v", err)
	}
	if got := g.Fork().DefaultRefDate()(); !got.Equal(ref) {
		t.Errorf("Fork ref date = %v, want %v", got, ref)
	}
}

// TestDerive tests that derive consumes one draw and is reproducible
func TestDerive(t *testing.T) {
	g := newTestGenerator(t, random.Scalar(42))
	child := g.Derive()
	if got := g.Random().Draws(); got != 1 {
		t.Errorf("Derive consumed %d draws, want 1", got)
	}

	for i := 0; i < 50; i++ {
		child.Random().Uint64()
	}
	afterChild := g.Random().Next(random.Bounds{Min: 0, Max: 1000})

	replay := newTestGenerator(t, random.Scalar(42))
	replayChild := replay.Derive()
	if afterChild != replay.Random().Next(random.Bounds{Min: 0, Max: 1000}) {
		t.Errorf("Parent output should not depend on draws from the derived generator")
	}

	if StateChecksum(replayChild) == StateChecksum(child) {
		t.Errorf("Derived generators at different positions should differ")
	}
	replayChild.Random().Skip(50)
	if StateChecksum(replayChild) != StateChecksum(child) {
		t.Errorf("Derived generator should be reproducible from the parent seed")
	}
}

// TestSetLocale tests validated locale setters
func TestSetLocale(t *testing.T) {
	g := newTestGenerator(t, random.Scalar(1))

	if err := g.SetLocale("fr"); !errors.Is(err, locale.ErrUnsupportedLocale) {
		t.Errorf("SetLocale(fr) error = %v, want ErrUnsupportedLocale", err)
	}
	if g.Locale() != "en" {
		t.Errorf("Locale() = %s after failed set, want en", g.Locale())
	}
	if err := g.SetLocaleFallback("fr"); !errors.Is(err, locale.ErrUnsupportedLocale) {
		t.Errorf("SetLocaleFallback(fr) error = %v, want ErrUnsupportedLocale", err)
	}

	if err := g.SetLocale("de"); err != nil {
		t.Fatalf("SetLocale(de) error = %v", err)
	}
	title, _ := g.Definitions().Metadata("title")
	if title != "German" {
		t.Errorf("title = %v, want German", title)
	}
	// de has no last names, so they come from the en fallback
	last, err := g.Person().LastName()
	if err != nil {
		t.Fatalf("LastName() error = %v", err)
	}
	found := false
	for _, v := range testLocales()["en"]["person"].(map[string]any)["last_name"].([]any) {
		if v == last {
			found = true
		}
	}
	if !found {
		t.Errorf("LastName() = %s, want a value from the en fallback", last)
	}
}

// TestSetDefaultRefDate tests every accepted reference date source
func TestSetDefaultRefDate(t *testing.T) {
	ref := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		source  any
		want    time.Time
		wantErr bool
	}{
		{name: "time", source: ref, want: ref},
		{name: "func", source: func() time.Time { return ref }, want: ref},
		{name: "ref date func", source: RefDateFunc(func() time.Time { return ref }), want: ref},
		{name: "unix millis int64", source: ref.UnixMilli(), want: ref},
		{name: "unix millis int", source: int(ref.UnixMilli()), want: ref},
		{name: "string", source: "2024-03-01T12:00:00Z", want: ref},
		{name: "bad string", source: "not a date", wantErr: true},
		{name: "unsupported type", source: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, random.Scalar(1))
			err := g.SetDefaultRefDate(tt.source)
			if tt.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("SetDefaultRefDate() error = %v, want ErrConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetDefaultRefDate() error = %v", err)
			}
			if got := g.DefaultRefDate()(); !got.Equal(tt.want) {
				t.Errorf("DefaultRefDate()() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("nil resets to now", func(t *testing.T) {
		g := newTestGenerator(t, random.Scalar(1))
		if err := g.SetDefaultRefDate(ref); err != nil {
			t.Fatalf("SetDefaultRefDate() error = %v", err)
		}
		if err := g.SetDefaultRefDate(nil); err != nil {
			t.Fatalf("SetDefaultRefDate(nil) error = %v", err)
		}
		if got := g.DefaultRefDate()(); time.Since(got) > time.Minute {
			t.Errorf("DefaultRefDate()() = %v, want about now", got)
		}
	})
}

// TestDeprecatedAccessors tests Name and Address notices
func TestDeprecatedAccessors(t *testing.T) {
	rec := &deprecation.Recorder{}
	g, err := New(&Options{Locales: testLocales(), Seed: random.Scalar(3), Notifier: rec.Notify})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if g.Name() != g.Person() {
		t.Errorf("Name() should return the person module")
	}
	if g.Address() != g.Location() {
		t.Errorf("Address() should return the location module")
	}

	notices := rec.Notices()
	if len(notices) != 2 {
		t.Fatalf("Got %d notices, want 2", len(notices))
	}
	if notices[0].Proposed != "generator.Person" || notices[1].Proposed != "generator.Location" {
		t.Errorf("Unexpected notices: %+v", notices)
	}
	if notices[0].Since != "8.0" || notices[0].Until != "10.0" {
		t.Errorf("Notice versions = %s/%s, want 8.0/10.0", notices[0].Since, notices[0].Until)
	}
}
