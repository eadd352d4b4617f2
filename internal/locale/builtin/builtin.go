// Package builtin embeds the locales shipped with Mirage.
package builtin

import (
	"embed"
	"sync"

	"github.com/Project-Sylos/Mirage/internal/locale"
)

//go:embed data/*.toml
var dataFS embed.FS

var (
	loadOnce sync.Once
	loaded   locale.Set
	loadErr  error
)

// Load returns the embedded locale set. The set is parsed once and shared;
// callers must not modify it.
func Load() (locale.Set, error) {
	loadOnce.Do(func() {
		loaded, loadErr = locale.LoadFromFS(dataFS, "data")
	})
	return loaded, loadErr
}

// MustLoad is like Load but panics on error.
func MustLoad() locale.Set {
	set, err := Load()
	if err != nil {
		panic(err)
	}
	return set
}
