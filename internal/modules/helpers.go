package modules

import (
	"strings"

	"github.com/google/uuid"
)

const (
	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Helpers provides generic random utilities.
type Helpers struct {
	core Core
}

func NewHelpers(core Core) *Helpers {
	return &Helpers{core: core}
}

// ArrayElement returns a random element of values, or "" for an empty slice.
func (h *Helpers) ArrayElement(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[h.core.Random().IntN(len(values))]
}

// Shuffle returns a shuffled copy of values.
func (h *Helpers) Shuffle(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	h.core.Random().Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// ReplaceSymbols replaces '#' with a digit, '?' with a letter and '*' with
// either.
func (h *Helpers) ReplaceSymbols(pattern string) string {
	src := h.core.Random()
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		switch r {
		case '#':
			b.WriteByte(digits[src.IntN(len(digits))])
		case '?':
			b.WriteByte(letters[src.IntN(len(letters))])
		case '*':
			if src.IntN(2) == 0 {
				b.WriteByte(digits[src.IntN(len(digits))])
			} else {
				b.WriteByte(letters[src.IntN(len(letters))])
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Maybe returns true with the given probability.
func (h *Helpers) Maybe(probability float64) bool {
	return h.core.Random().Float64() < probability
}

// UUID returns a version 4 UUID drawn from the seeded source, so it is
// reproducible like every other value.
func (h *Helpers) UUID() string {
	// The seeded source never fails to read.
	id, _ := uuid.NewRandomFromReader(h.core.Random())
	return id.String()
}
