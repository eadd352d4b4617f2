package locale

import (
	"slices"

	"github.com/spf13/cast"
)

// ModuleView is a lazily built handle on one module. Lookups always go
// through the resolver's live locale selection.
type ModuleView struct {
	resolver *Resolver
	name     string
}

// Name returns the canonical module name.
func (v *ModuleView) Name() string {
	return v.name
}

// Get returns the raw value of entry.
func (v *ModuleView) Get(entry string) (any, bool) {
	return v.resolver.entry(v.name, entry)
}

// String returns entry coerced to a string.
func (v *ModuleView) String(entry string) (string, bool) {
	raw, ok := v.Get(entry)
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}
	return s, true
}

// Strings returns entry coerced to a string slice. Empty lists count as
// missing data.
func (v *ModuleView) Strings(entry string) ([]string, bool) {
	raw, ok := v.Get(entry)
	if !ok {
		return nil, false
	}
	values, err := cast.ToStringSliceE(raw)
	if err != nil || len(values) == 0 {
		return nil, false
	}
	return values, true
}

// Entries returns the sorted union of entry names across both locales.
func (v *ModuleView) Entries() []string {
	seen := make(map[string]struct{})
	for _, def := range v.resolver.chain() {
		entries, ok := def.Module(v.name)
		if !ok {
			continue
		}
		for name, value := range entries {
			if value != nil {
				seen[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
