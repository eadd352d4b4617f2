package modules

import (
	"fmt"
	"math"
	"time"

	"github.com/Project-Sylos/Mirage/internal/random"
)

const (
	day  = 24 * time.Hour
	year = 365 * day
)

// Date generates points in time relative to the generator's reference date.
type Date struct {
	core Core
}

func NewDate(core Core) *Date {
	return &Date{core: core}
}

// Past returns a time within the given number of years before the reference date.
func (d *Date) Past(years int) (time.Time, error) {
	span, err := spanOf(years, year)
	if err != nil {
		return time.Time{}, err
	}
	return d.offset(-span)
}

// Future returns a time within the given number of years after the reference date.
func (d *Date) Future(years int) (time.Time, error) {
	span, err := spanOf(years, year)
	if err != nil {
		return time.Time{}, err
	}
	return d.offset(span)
}

// Recent returns a time within the given number of days before the reference date.
func (d *Date) Recent(days int) (time.Time, error) {
	span, err := spanOf(days, day)
	if err != nil {
		return time.Time{}, err
	}
	return d.offset(-span)
}

// Soon returns a time within the given number of days after the reference date.
func (d *Date) Soon(days int) (time.Time, error) {
	span, err := spanOf(days, day)
	if err != nil {
		return time.Time{}, err
	}
	return d.offset(span)
}

// spanOf returns n units as a Duration. n must be positive and small enough
// that the Duration does not overflow.
func spanOf(n int, unit time.Duration) (time.Duration, error) {
	if n <= 0 || int64(n) > int64(math.MaxInt64/unit) {
		return 0, fmt.Errorf("%w: %d out of range (1-%d)", ErrInvalidRange, n, int64(math.MaxInt64/unit))
	}
	return time.Duration(n) * unit, nil
}

// Between returns a time in [from, to], with millisecond precision.
func (d *Date) Between(from, to time.Time) (time.Time, error) {
	if to.Before(from) {
		return time.Time{}, fmt.Errorf("%w: %s after %s", ErrInvalidRange, from, to)
	}
	ms := d.core.Random().Next(random.Bounds{Min: from.UnixMilli(), Max: to.UnixMilli()})
	return time.UnixMilli(ms).In(from.Location()), nil
}

// offset moves the reference date by at least one second and at most span.
func (d *Date) offset(span time.Duration) (time.Time, error) {
	if span == 0 {
		return time.Time{}, fmt.Errorf("%w: empty span", ErrInvalidRange)
	}
	ref := d.core.DefaultRefDate()()
	sign := time.Duration(1)
	if span < 0 {
		sign, span = -1, -span
	}
	ms := d.core.Random().Next(random.Bounds{Min: 1000, Max: span.Milliseconds()})
	return ref.Add(sign * time.Duration(ms) * time.Millisecond), nil
}
