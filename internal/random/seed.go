package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MaxSeed is the upper bound used when a seed is drawn from another source.
const MaxSeed = math.MaxInt64

// Seed fully determines the future draws of a Source. It is either a single
// value or an ordered sequence of values; the zero Seed means "not set".
type Seed struct {
	values   []int64
	sequence bool
}

// Scalar returns a single-value seed.
func Scalar(v int64) Seed {
	return Seed{values: []int64{v}}
}

// Sequence returns a seed made of an ordered sequence of values.
func Sequence(vs ...int64) Seed {
	values := make([]int64, len(vs))
	copy(values, vs)
	return Seed{values: values, sequence: true}
}

// NewEntropySeed draws a non-negative scalar seed from crypto/rand.
func NewEntropySeed() Seed {
	var b [8]byte
	// crypto/rand.Read does not return errors since Go 1.24.
	_, _ = crand.Read(b[:])
	return Scalar(int64(binary.LittleEndian.Uint64(b[:]) >> 1))
}

// IsZero reports whether the seed is unset.
func (s Seed) IsZero() bool {
	return !s.sequence && len(s.values) == 0
}

// IsSequence reports whether the seed was built from a sequence.
func (s Seed) IsSequence() bool {
	return s.sequence
}

// Value returns the scalar value. ok is false for sequences and unset seeds.
func (s Seed) Value() (v int64, ok bool) {
	if s.sequence || len(s.values) != 1 {
		return 0, false
	}
	return s.values[0], true
}

// Values returns a copy of the seed values.
func (s Seed) Values() []int64 {
	return slices.Clone(s.values)
}

// Equal reports whether both seeds install the same state.
func (s Seed) Equal(other Seed) bool {
	return s.sequence == other.sequence && slices.Equal(s.values, other.values)
}

// String renders scalars as "42" and sequences as "[1,2,3]".
func (s Seed) String() string {
	if s.IsZero() {
		return ""
	}
	if v, ok := s.Value(); ok {
		return strconv.FormatInt(v, 10)
	}
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts "42", "[1,2,3]" or "1,2,3". Empty text resets the seed.
func (s *Seed) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*s = Seed{}
		return nil
	}

	bracketed := strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]")
	if !bracketed && !strings.Contains(raw, ",") {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", raw, err)
		}
		*s = Scalar(v)
		return nil
	}

	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	values := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed value %q: %w", part, err)
		}
		values = append(values, v)
	}
	*s = Sequence(values...)
	return nil
}

// MarshalJSON encodes scalars as numbers, sequences as arrays and unset seeds as null.
func (s Seed) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte("null"), nil
	}
	if v, ok := s.Value(); ok {
		return json.Marshal(v)
	}
	if len(s.values) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.values)
}

// UnmarshalJSON accepts a number, an array of numbers or null.
func (s *Seed) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*s = Seed{}
		return nil
	case strings.HasPrefix(trimmed, "["):
		var values []int64
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("invalid seed sequence: %w", err)
		}
		*s = Sequence(values...)
		return nil
	default:
		var v int64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		*s = Scalar(v)
		return nil
	}
}
