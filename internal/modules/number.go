package modules

import (
	"fmt"

	"github.com/Project-Sylos/Mirage/internal/random"
)

// Number generates numeric values.
type Number struct {
	core Core
}

func NewNumber(core Core) *Number {
	return &Number{core: core}
}

// Int returns an integer in [min, max].
func (n *Number) Int(min, max int64) (int64, error) {
	if max < min {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	return n.core.Random().Next(random.Bounds{Min: min, Max: max}), nil
}

// Float returns a float in [min, max).
func (n *Number) Float(min, max float64) (float64, error) {
	if max < min {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}
	return min + n.core.Random().Float64()*(max-min), nil
}

// Digit returns a single decimal digit.
func (n *Number) Digit() int {
	return n.core.Random().IntN(10)
}
