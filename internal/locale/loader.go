package locale

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var decoders = map[string]func([]byte, any) error{
	".toml": toml.Unmarshal,
	".json": json.Unmarshal,
}

// LoadFromFS reads every <locale>.toml and <locale>.json file in dir. The file
// name without extension is the locale key; top-level scalars are metadata and
// tables are modules.
func LoadFromFS(fsys fs.FS, dir string) (Set, error) {
	var paths []string
	for ext := range decoders {
		matches, err := fs.Glob(fsys, path.Join(dir, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("glob locale files: %w", err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}
	sort.Strings(paths)

	set := make(Set, len(paths))
	for _, p := range paths {
		ext := path.Ext(p)
		key := strings.TrimSuffix(path.Base(p), ext)
		if _, err := Tag(key); err != nil {
			return nil, fmt.Errorf("locale file %s: %w", p, err)
		}
		if _, exists := set[key]; exists {
			return nil, fmt.Errorf("locale file %s: locale %q already defined", p, key)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", p, err)
		}
		def := Definition{}
		if err := decoders[ext](data, &def); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", p, err)
		}
		set[key] = def
	}

	return set, nil
}

// Tag returns the BCP 47 tag for a locale key such as "de_CH". Keys that are
// well-formed but carry unregistered subtags (e.g. "en_AU_ocker") are
// accepted with the best-effort tag.
func Tag(key string) (language.Tag, error) {
	if strings.TrimSpace(key) == "" {
		return language.Und, fmt.Errorf("locale key is required")
	}
	if i := strings.IndexFunc(key, invalidKeyRune); i >= 0 {
		return language.Und, fmt.Errorf("invalid locale key %q: unexpected character %q", key, key[i])
	}
	tag, err := language.Parse(strings.ReplaceAll(key, "_", "-"))
	if err != nil {
		var unknown language.ValueError
		if errors.As(err, &unknown) {
			return tag, nil
		}
		return language.Und, fmt.Errorf("invalid locale key %q: %w", key, err)
	}
	return tag, nil
}

func invalidKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		return false
	}
	return true
}
