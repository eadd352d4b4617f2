// Package random provides the seeded random source shared by every value
// generator.
//
// # Determinism
//
// Two sources seeded with the same Seed and driven by the same ordered
// sequence of calls produce bit-identical output. Every draw advances the
// state, so reordering calls changes results.
//
// # Forking
//
// Fork returns an independent copy whose future output is identical to what
// the original would have produced. Forking consumes nothing, and the two
// sources share no mutable state afterwards.
package random

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
)

// Bounds is an inclusive range for Next.
type Bounds struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// counter wraps an Engine and counts the words it hands out, so a source's
// state can be reproduced from (seed, draws).
type counter struct {
	engine Engine
	draws  uint64
}

func (c *counter) Uint64() uint64 {
	c.draws++
	return c.engine.Uint64()
}

// Source is a seeded pseudo-random source. It is not safe for concurrent use.
type Source struct {
	src  *counter
	rng  *rand.Rand
	seed Seed
}

// New creates a PCG-backed source. A zero seed is replaced by entropy.
func New(seed Seed) *Source {
	if seed.IsZero() {
		seed = NewEntropySeed()
	}
	return newSource(&counter{engine: NewPCGEngine(seed)}, seed)
}

// NewWithEngine wraps an existing engine without reseeding it.
func NewWithEngine(engine Engine) *Source {
	return newSource(&counter{engine: engine}, Seed{})
}

func newSource(src *counter, seed Seed) *Source {
	return &Source{
		src:  src,
		rng:  rand.New(src),
		seed: seed,
	}
}

// Seed installs seed and returns it. A zero seed is replaced by entropy, and
// the returned value is the one actually installed: seeding again with it
// reproduces the same draws.
func (s *Source) Seed(seed Seed) Seed {
	if seed.IsZero() {
		seed = NewEntropySeed()
	}
	s.src.engine.Reseed(seed)
	s.src.draws = 0
	s.seed = seed
	return seed
}

// SeedRandom installs a seed drawn from entropy and returns it.
func (s *Source) SeedRandom() Seed {
	return s.Seed(Seed{})
}

// Installed returns the last seed installed on the source. It is zero for
// sources built around a pre-seeded engine.
func (s *Source) Installed() Seed {
	return s.seed
}

// Draws returns the number of engine words consumed since the last seed.
func (s *Source) Draws() uint64 {
	return s.src.draws
}

// Skip consumes n engine words.
func (s *Source) Skip(n uint64) {
	for i := uint64(0); i < n; i++ {
		s.src.Uint64()
	}
}

// Fork returns an independent source whose future output is identical to
// the receiver's. No draws are consumed.
func (s *Source) Fork() *Source {
	return newSource(&counter{
		engine: s.src.engine.Clone(),
		draws:  s.src.draws,
	}, s.seed)
}

// Next returns a value in [b.Min, b.Max]. It panics if b.Max < b.Min.
func (s *Source) Next(b Bounds) int64 {
	if b.Max < b.Min {
		panic(fmt.Sprintf("random: invalid bounds [%d, %d]", b.Min, b.Max))
	}
	span := uint64(b.Max) - uint64(b.Min)
	if span == math.MaxUint64 {
		return int64(s.rng.Uint64())
	}
	return int64(uint64(b.Min) + s.rng.Uint64N(span+1))
}

// Uint64 returns a value from the engine's full domain.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Float64 returns a value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Shuffle pseudo-randomizes the order of n elements.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Read fills p with pseudo-random bytes, consuming one word per eight bytes.
// It never returns an error.
func (s *Source) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], s.rng.Uint64())
		copy(p[i:], word[:])
	}
	return len(p), nil
}
