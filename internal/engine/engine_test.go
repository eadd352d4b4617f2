package engine

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Project-Sylos/Mirage/internal/config"
	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/random"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// TestLoadLocales tests built-in and directory locale sources
func TestLoadLocales(t *testing.T) {
	dir := t.TempDir()
	data := "title = \"Dutch\"\n\n[person]\nfirst_name = [\"Sanne\", \"Daan\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "nl.toml"), []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write locale file: %v", err)
	}

	tests := []struct {
		name     string
		dir      string
		wantKeys []string
		wantErr  bool
	}{
		{name: "built-in", dir: "", wantKeys: []string{"de", "de_CH", "en"}},
		{name: "directory", dir: dir, wantKeys: []string{"nl"}},
		{name: "empty directory", dir: t.TempDir(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := LoadLocales(tt.dir)
			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadLocales() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadLocales() error = %v", err)
			}
			keys := set.Keys()
			if len(keys) != len(tt.wantKeys) {
				t.Fatalf("Keys() = %v, want %v", keys, tt.wantKeys)
			}
			for i := range keys {
				if keys[i] != tt.wantKeys[i] {
					t.Errorf("Keys()[%d] = %s, want %s", i, keys[i], tt.wantKeys[i])
				}
			}
		})
	}
}

// TestNewFromConfig tests wiring an engine with in-memory storage
func TestNewFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.DBPath = config.InMemoryDBPath
	cfg.Generator.Seed = random.Scalar(42)

	e, err := NewFromConfig(&cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	defer e.Close()

	if e.Sessions() == nil {
		t.Fatalf("Sessions() returned nil")
	}

	a, err := e.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	b, err := e.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	nameA, err := a.Person().FullName()
	if err != nil {
		t.Fatalf("FullName() error = %v", err)
	}
	nameB, _ := b.Person().FullName()
	if nameA != nameB {
		t.Errorf("Configured seed should make generators agree: %s vs %s", nameA, nameB)
	}
}

// TestNewFromConfigUnknownLocale tests that locale defaults must exist in the set
func TestNewFromConfigUnknownLocale(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.DBPath = config.InMemoryDBPath
	cfg.Generator.Locale = "fr"

	_, err := NewFromConfig(&cfg, quietLogger())
	if !errors.Is(err, locale.ErrUnsupportedLocale) {
		t.Errorf("NewFromConfig() error = %v, want ErrUnsupportedLocale", err)
	}
}
