// Package modules holds the value generators built on top of a Generator.
// Modules only see the Core interface: randomness comes from Random() and
// data from Definitions(). They never read locale definitions directly.
package modules

import (
	"errors"
	"time"

	"github.com/Project-Sylos/Mirage/internal/locale"
	"github.com/Project-Sylos/Mirage/internal/random"
)

// ErrInvalidRange is returned when a lower bound exceeds an upper bound.
var ErrInvalidRange = errors.New("invalid range: min must not exceed max")

// Core is what a module needs from its generator.
type Core interface {
	Random() *random.Source
	Definitions() *locale.Resolver
	DefaultRefDate() func() time.Time
}

// pick returns a random element of the string list at module.entry.
func pick(core Core, module, entry string) (string, error) {
	view, ok := core.Definitions().Module(module)
	if !ok {
		return "", &locale.MissingDataError{Module: module}
	}
	values, ok := view.Strings(entry)
	if !ok {
		return "", &locale.MissingDataError{Module: module, Entry: entry}
	}
	return values[core.Random().IntN(len(values))], nil
}
