package random

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/zeebo/xxh3"
)

// Engine is the pseudo-random algorithm behind a Source. Implementations
// must be fully determined by the last Seed passed to Reseed.
type Engine interface {
	Uint64() uint64
	Reseed(seed Seed)
	// Clone returns an engine whose future output equals the receiver's.
	Clone() Engine
}

// PCGEngine is the default Engine, backed by math/rand/v2's PCG.
type PCGEngine struct {
	pcg rand.PCG
}

// NewPCGEngine returns a PCG engine seeded with seed.
func NewPCGEngine(seed Seed) *PCGEngine {
	e := &PCGEngine{}
	e.Reseed(seed)
	return e
}

func (e *PCGEngine) Uint64() uint64 {
	return e.pcg.Uint64()
}

func (e *PCGEngine) Reseed(seed Seed) {
	hi, lo := seedWords(seed)
	e.pcg.Seed(hi, lo)
}

func (e *PCGEngine) Clone() Engine {
	clone := *e
	return &clone
}

// seedWords maps a seed onto the two PCG state words. Scalars seed the first
// word directly; sequences are folded with a 128-bit xxh3 hash so that every
// element and its position matter.
func seedWords(seed Seed) (uint64, uint64) {
	if v, ok := seed.Value(); ok {
		return uint64(v), 0
	}

	values := seed.values
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	sum := xxh3.Hash128(buf)
	return sum.Hi, sum.Lo
}
