// Package locale resolves generation data across a primary and a fallback
// locale.
//
// A Definition maps module names to entry tables, plus a few metadata keys
// such as "title". Definitions are loaded once and shared read-only by every
// Resolver built on top of them.
package locale

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultLocale is the conventional base locale used when none is selected.
const DefaultLocale = "en"

// MetadataKeys are the whole-definition keys readable through Resolver.Metadata.
var MetadataKeys = []string{"title"}

// Definition is the data of one locale: module name to entry table, or a
// metadata key to its value.
type Definition map[string]any

// Set maps locale keys to their definitions.
type Set map[string]Definition

var (
	// ErrUnsupportedLocale is wrapped by UnsupportedLocaleError.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrMissingLocaleData is wrapped by MissingDataError.
	ErrMissingLocaleData = errors.New("missing locale data")
)

// UnsupportedLocaleError reports a locale key absent from the configured Set.
type UnsupportedLocaleError struct {
	Locale string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("locale %s is not supported: add it to the configured locales first", e.Locale)
}

func (e *UnsupportedLocaleError) Unwrap() error {
	return ErrUnsupportedLocale
}

// MissingDataError reports a module or entry that neither the primary nor the
// fallback locale defines. The resolver itself signals this condition by
// absence; value generators that cannot proceed without the data return it.
type MissingDataError struct {
	Module string
	Entry  string
}

func (e *MissingDataError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("no locale data for module %s", e.Module)
	}
	return fmt.Sprintf("no locale data for %s.%s", e.Module, e.Entry)
}

func (e *MissingDataError) Unwrap() error {
	return ErrMissingLocaleData
}

// Module returns the entry table for name, if the definition has one.
func (d Definition) Module(name string) (map[string]any, bool) {
	raw, ok := d[name]
	if !ok || raw == nil {
		return nil, false
	}
	entries, ok := raw.(map[string]any)
	return entries, ok
}

// Has reports whether key is usable as a primary or fallback locale.
func (s Set) Has(key string) bool {
	def, ok := s[key]
	return ok && def != nil
}

// Keys returns the locale keys in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func isMetadataKey(key string) bool {
	return slices.Contains(MetadataKeys, key)
}
