package modules

import (
	"errors"

	"github.com/Project-Sylos/Mirage/internal/locale"
)

// Location generates addresses from the "location" module.
type Location struct {
	core    Core
	helpers *Helpers
}

func NewLocation(core Core) *Location {
	return &Location{core: core, helpers: NewHelpers(core)}
}

func (l *Location) City() (string, error) {
	return pick(l.core, "location", "city_name")
}

func (l *Location) Country() (string, error) {
	return pick(l.core, "location", "country")
}

// Street returns a street name, followed by a suffix when the locale has one.
func (l *Location) Street() (string, error) {
	name, err := pick(l.core, "location", "street_name")
	if err != nil {
		return "", err
	}
	suffix, err := pick(l.core, "location", "street_suffix")
	if errors.Is(err, locale.ErrMissingLocaleData) {
		return name, nil
	}
	if err != nil {
		return "", err
	}
	return name + " " + suffix, nil
}

// ZipCode fills a random postcode pattern of the locale.
func (l *Location) ZipCode() (string, error) {
	pattern, err := pick(l.core, "location", "postcode")
	if err != nil {
		return "", err
	}
	return l.helpers.ReplaceSymbols(pattern), nil
}
