package locale

import (
	"github.com/Project-Sylos/Mirage/internal/deprecation"
)

// Resolver looks up locale data in the primary locale first and the fallback
// locale second. It never consults a third locale. A Resolver is not safe for
// concurrent use; the Set it reads is never mutated.
type Resolver struct {
	locales  Set
	primary  string
	fallback string
	views    map[string]*ModuleView
	notify   deprecation.Notifier
}

// NewResolver validates both locale keys against locales and returns a
// resolver for them. A nil notify discards deprecation notices.
func NewResolver(locales Set, primary, fallback string, notify deprecation.Notifier) (*Resolver, error) {
	if notify == nil {
		notify = deprecation.Discard
	}
	r := &Resolver{
		locales: locales,
		views:   make(map[string]*ModuleView),
		notify:  notify,
	}
	if err := r.SetPrimary(primary); err != nil {
		return nil, err
	}
	if err := r.SetFallback(fallback); err != nil {
		return nil, err
	}
	return r, nil
}

// Clone returns a resolver over the same Set and selection with an empty cache.
func (r *Resolver) Clone() *Resolver {
	return &Resolver{
		locales:  r.locales,
		primary:  r.primary,
		fallback: r.fallback,
		views:    make(map[string]*ModuleView),
		notify:   r.notify,
	}
}

// Locales returns the shared locale set.
func (r *Resolver) Locales() Set {
	return r.locales
}

// Primary returns the primary locale key.
func (r *Resolver) Primary() string {
	return r.primary
}

// Fallback returns the fallback locale key.
func (r *Resolver) Fallback() string {
	return r.fallback
}

// SetPrimary selects the primary locale. The selection is left unchanged if
// key is not in the Set.
func (r *Resolver) SetPrimary(key string) error {
	if !r.locales.Has(key) {
		return &UnsupportedLocaleError{Locale: key}
	}
	r.primary = key
	r.invalidate()
	return nil
}

// SetFallback selects the fallback locale. The selection is left unchanged if
// key is not in the Set.
func (r *Resolver) SetFallback(key string) error {
	if !r.locales.Has(key) {
		return &UnsupportedLocaleError{Locale: key}
	}
	r.fallback = key
	r.invalidate()
	return nil
}

func (r *Resolver) invalidate() {
	clear(r.views)
}

// Metadata returns a whole-definition value such as the locale title. Keys
// outside MetadataKeys are never resolved here.
func (r *Resolver) Metadata(key string) (any, bool) {
	if !isMetadataKey(key) {
		return nil, false
	}
	return r.base(key)
}

// Entry returns the value of entry in module, preferring the primary locale.
// ok is false when neither locale defines it.
func (r *Resolver) Entry(module, entry string) (any, bool) {
	return r.entry(r.canonical(module), entry)
}

// Module returns a cached view over module. ok is false when neither locale
// defines the module at all.
func (r *Resolver) Module(module string) (*ModuleView, bool) {
	module = r.canonical(module)
	if isMetadataKey(module) {
		return nil, false
	}
	if view, ok := r.views[module]; ok {
		return view, true
	}
	if !r.hasModule(module) {
		return nil, false
	}
	view := &ModuleView{resolver: r, name: module}
	r.views[module] = view
	return view, true
}

// canonical rewrites legacy module names, announcing each use.
func (r *Resolver) canonical(module string) string {
	alias, ok := moduleAliases[module]
	if !ok {
		return module
	}
	r.notify(alias.notice)
	return alias.canonical
}

func (r *Resolver) base(key string) (any, bool) {
	for _, def := range r.chain() {
		if v, ok := def[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r *Resolver) hasModule(module string) bool {
	for _, def := range r.chain() {
		if _, ok := def.Module(module); ok {
			return true
		}
	}
	return false
}

func (r *Resolver) entry(module, entry string) (any, bool) {
	for _, def := range r.chain() {
		entries, ok := def.Module(module)
		if !ok {
			continue
		}
		if v, ok := entries[entry]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r *Resolver) chain() [2]Definition {
	return [2]Definition{r.locales[r.primary], r.locales[r.fallback]}
}
