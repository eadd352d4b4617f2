// Package session manages named generators whose state survives restarts.
//
// A session is persisted as (seed, draws): replaying draws words from a
// freshly seeded source restores the exact random state. Each save also
// records a checksum of that state, which is verified on restore.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Project-Sylos/Mirage/internal/deprecation"
	"github.com/Project-Sylos/Mirage/internal/generator"
	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/random"
	"github.com/Project-Sylos/Mirage/internal/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// MaxDrawCount caps the number of values returned by one Draw call
const MaxDrawCount = 10000

var (
	// ErrNotFound is returned for unknown session ids
	ErrNotFound = errors.New("session not found")
	// ErrInvalidRequest is returned for malformed draw requests
	ErrInvalidRequest = errors.New("invalid request")
	// ErrStateMismatch is returned when a replayed session does not match its checksum
	ErrStateMismatch = errors.New("replayed state does not match stored checksum")
)

// Store persists session records
type Store interface {
	SaveSession(ctx context.Context, s *types.Session) error
	GetSession(ctx context.Context, id string) (*types.Session, error)
	ListSessions(ctx context.Context) ([]*types.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// CreateOptions configures a new session. Empty fields use the manager defaults.
type CreateOptions struct {
	Seed           random.Seed `json:"seed"`
	Locale         string      `json:"locale"`
	LocaleFallback string      `json:"locale_fallback"`
}

// Manager owns the live generators of all sessions
type Manager struct {
	store    Store
	locales  locale.Set
	defaults types.GeneratorConfig
	notify   deprecation.Notifier
	log      logrus.FieldLogger
	now      func() time.Time

	// persist orders store writes against deletes; taken before mu
	persist sync.Mutex

	mu      sync.Mutex
	live    map[string]*entry
	deleted map[string]struct{} // ids are never reused
}

type entry struct {
	mu  sync.Mutex
	gen *generator.Generator
	rec types.Session
}

// NewManager creates a manager backed by store. Deprecation notices are
// logged once per deprecated path.
func NewManager(store Store, locales locale.Set, defaults types.GeneratorConfig, logger logrus.FieldLogger) *Manager {
	return &Manager{
		store:    store,
		locales:  locales,
		defaults: defaults,
		notify:   deprecation.Once(deprecation.Log(logger)),
		log:      logger,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		live:     make(map[string]*entry),
		deleted:  make(map[string]struct{}),
	}
}

// Locales describes the configured locales, sorted by key
func (m *Manager) Locales() []types.LocaleInfo {
	infos := make([]types.LocaleInfo, 0, len(m.locales))
	for _, key := range m.locales.Keys() {
		info := types.LocaleInfo{Key: key}
		if tag, err := locale.Tag(key); err == nil {
			info.Tag = tag.String()
		}
		if title, ok := m.locales[key]["title"]; ok {
			info.Title = cast.ToString(title)
		}
		infos = append(infos, info)
	}
	return infos
}

// Create starts a new session
func (m *Manager) Create(ctx context.Context, opts CreateOptions) (*types.Session, error) {
	primary := firstNonEmpty(opts.Locale, m.defaults.Locale)
	fallback := firstNonEmpty(opts.LocaleFallback, m.defaults.LocaleFallback)

	gen, err := generator.New(&generator.Options{
		Locales:        m.locales,
		Locale:         primary,
		LocaleFallback: fallback,
		Notifier:       m.notify,
	})
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed.IsZero() {
		seed = m.defaults.Seed
	}
	installed := gen.Seed(seed)

	now := m.now()
	e := &entry{
		gen: gen,
		rec: types.Session{
			ID:        uuid.NewString(),
			Origin:    types.OriginSeed,
			CreatedAt: now,
		},
	}

	if err := m.add(ctx, e); err != nil {
		return nil, err
	}

	m.log.WithFields(logrus.Fields{
		"session": e.rec.ID,
		"seed":    installed.String(),
		"locale":  gen.Locale(),
	}).Info("session created")

	return m.snapshot(e), nil
}

// Get returns the current state of a session
func (m *Manager) Get(ctx context.Context, id string) (*types.Session, error) {
	e, err := m.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return m.snapshot(e), nil
}

// List returns every stored session
func (m *Manager) List(ctx context.Context) ([]*types.Session, error) {
	sessions, err := m.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// Delete removes a session from memory and storage. Operations already
// running on the session fail with ErrNotFound instead of saving it again.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.persist.Lock()
	defer m.persist.Unlock()

	if m.isDeleted(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := m.store.DeleteSession(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	m.deleted[id] = struct{}{}
	delete(m.live, id)
	m.mu.Unlock()

	m.log.WithField("session", id).Info("session deleted")
	return nil
}

func (m *Manager) isDeleted(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.deleted[id]
	return ok
}

// Reseed installs seed, or an entropy seed when zero, and resets the draw count
func (m *Manager) Reseed(ctx context.Context, id string, seed random.Seed) (*types.Session, error) {
	return m.update(ctx, id, func(gen *generator.Generator) error {
		gen.Seed(seed)
		return nil
	})
}

// SetLocale changes the primary and/or fallback locale. Empty keys are left
// unchanged; on error neither locale changes.
func (m *Manager) SetLocale(ctx context.Context, id, primary, fallback string) (*types.Session, error) {
	return m.update(ctx, id, func(gen *generator.Generator) error {
		previous := gen.Locale()
		if primary != "" {
			if err := gen.SetLocale(primary); err != nil {
				return err
			}
		}
		if fallback != "" {
			if err := gen.SetLocaleFallback(fallback); err != nil {
				// previous was valid when it was set
				_ = gen.SetLocale(previous)
				return err
			}
		}
		return nil
	})
}

// Draw returns count values in [b.Min, b.Max]
func (m *Manager) Draw(ctx context.Context, id string, b random.Bounds, count int) ([]int64, error) {
	if b.Max < b.Min {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRequest, b.Min, b.Max)
	}
	if count < 1 || count > MaxDrawCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidRequest, MaxDrawCount)
	}

	values := make([]int64, count)
	_, err := m.update(ctx, id, func(gen *generator.Generator) error {
		for i := range values {
			values[i] = gen.Random().Next(b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Fork creates a child session with the same random state. The parent is
// unchanged.
func (m *Manager) Fork(ctx context.Context, id string) (*types.Session, error) {
	return m.spawn(ctx, id, types.OriginFork, (*generator.Generator).Fork)
}

// Derive creates a child session seeded from one draw of the parent
func (m *Manager) Derive(ctx context.Context, id string) (*types.Session, error) {
	return m.spawn(ctx, id, types.OriginDerive, (*generator.Generator).Derive)
}

// Entries lists the entry names of a locale module under the session's locales
func (m *Manager) Entries(ctx context.Context, id, module string) ([]string, error) {
	var entries []string
	err := m.read(ctx, id, func(gen *generator.Generator) error {
		view, ok := gen.Definitions().Module(module)
		if !ok {
			return &locale.MissingDataError{Module: module}
		}
		entries = view.Entries()
		return nil
	})
	return entries, err
}

// Resolve returns the raw value of module.entry under the session's locales
func (m *Manager) Resolve(ctx context.Context, id, module, name string) (any, error) {
	var value any
	err := m.read(ctx, id, func(gen *generator.Generator) error {
		v, ok := gen.Definitions().Entry(module, name)
		if !ok {
			return &locale.MissingDataError{Module: module, Entry: name}
		}
		value = v
		return nil
	})
	return value, err
}

// With runs fn against the session's generator and persists the new state.
// fn must not retain the generator.
func (m *Manager) With(ctx context.Context, id string, fn func(gen *generator.Generator) (any, error)) (any, error) {
	var result any
	_, err := m.update(ctx, id, func(gen *generator.Generator) error {
		var err error
		result, err = fn(gen)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *Manager) spawn(ctx context.Context, id, origin string, split func(*generator.Generator) *generator.Generator) (*types.Session, error) {
	parent, err := m.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	parent.mu.Lock()
	if m.isDeleted(id) {
		parent.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	before := parent.gen.Random().Draws()
	childGen := split(parent.gen)
	if parent.gen.Random().Draws() != before {
		if err := m.save(ctx, parent); err != nil {
			parent.mu.Unlock()
			return nil, err
		}
	}
	parent.mu.Unlock()

	child := &entry{
		gen: childGen,
		rec: types.Session{
			ID:        uuid.NewString(),
			ParentID:  id,
			Origin:    origin,
			CreatedAt: m.now(),
		},
	}
	if err := m.add(ctx, child); err != nil {
		return nil, err
	}

	m.log.WithFields(logrus.Fields{
		"session": child.rec.ID,
		"parent":  id,
		"origin":  origin,
	}).Info("session created")

	return m.snapshot(child), nil
}

// update runs fn under the session lock and persists the result
func (m *Manager) update(ctx context.Context, id string, fn func(gen *generator.Generator) error) (*types.Session, error) {
	e, err := m.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fnErr := fn(e.gen)
	// fn may have drawn before failing, so the state is saved either way
	if err := m.save(ctx, e); err != nil {
		return nil, err
	}
	if fnErr != nil {
		return nil, fnErr
	}
	return m.snapshot(e), nil
}

// read runs fn under the session lock without persisting
func (m *Manager) read(ctx context.Context, id string, fn func(gen *generator.Generator) error) error {
	e, err := m.lookup(ctx, id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.gen)
}

func (m *Manager) add(ctx context.Context, e *entry) error {
	if err := m.save(ctx, e); err != nil {
		return err
	}
	m.mu.Lock()
	m.live[e.rec.ID] = e
	m.mu.Unlock()
	return nil
}

// save copies the generator state into the record and stores it. A deleted
// session is never written back.
func (m *Manager) save(ctx context.Context, e *entry) error {
	m.persist.Lock()
	defer m.persist.Unlock()

	if m.isDeleted(e.rec.ID) {
		return fmt.Errorf("%w: %s", ErrNotFound, e.rec.ID)
	}

	src := e.gen.Random()
	e.rec.Seed = src.Installed()
	e.rec.Draws = src.Draws()
	e.rec.Locale = e.gen.Locale()
	e.rec.LocaleFallback = e.gen.LocaleFallback()
	e.rec.Checksum = generator.StateChecksum(e.gen)
	e.rec.UpdatedAt = m.now()

	rec := e.rec
	if err := m.store.SaveSession(ctx, &rec); err != nil {
		return fmt.Errorf("failed to save session %s: %w", rec.ID, err)
	}
	return nil
}

// lookup returns the live entry for id, restoring it from the store if
// needed. Restores run outside m.mu so a long replay blocks only its session.
func (m *Manager) lookup(ctx context.Context, id string) (*entry, error) {
	m.mu.Lock()
	e, ok := m.live[id]
	_, gone := m.deleted[id]
	m.mu.Unlock()
	if ok {
		return e, nil
	}
	if gone {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	rec, err := m.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	gen, err := Restore(rec, m.locales, m.notify)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, gone := m.deleted[id]; gone {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	// Another caller may have restored it meanwhile
	if e, ok := m.live[id]; ok {
		return e, nil
	}

	e = &entry{gen: gen, rec: *rec}
	m.live[id] = e
	m.log.WithFields(logrus.Fields{
		"session": id,
		"draws":   rec.Draws,
	}).Debug("session restored")
	return e, nil
}

func (m *Manager) snapshot(e *entry) *types.Session {
	rec := e.rec
	return &rec
}

// Restore rebuilds the generator of a stored session by seeding it and
// replaying rec.Draws words
func Restore(rec *types.Session, locales locale.Set, notify deprecation.Notifier) (*generator.Generator, error) {
	if rec.Seed.IsZero() {
		return nil, fmt.Errorf("session %s has no seed", rec.ID)
	}

	gen, err := generator.New(&generator.Options{
		Locales:        locales,
		Locale:         rec.Locale,
		LocaleFallback: rec.LocaleFallback,
		Seed:           rec.Seed,
		Notifier:       notify,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", rec.ID, err)
	}

	gen.Random().Skip(rec.Draws)

	if rec.Checksum != "" && generator.StateChecksum(gen) != rec.Checksum {
		return nil, fmt.Errorf("%w: session %s", ErrStateMismatch, rec.ID)
	}

	return gen, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
