package generator

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// RefDateFunc returns the reference date used by date-relative generators.
type RefDateFunc func() time.Time

// DefaultRefDate returns the current reference-date provider. It is
// evaluated on every call, so the default tracks the wall clock.
func (g *Generator) DefaultRefDate() func() time.Time {
	return g.refDate
}

// SetDefaultRefDate replaces the reference-date provider.
//
// Accepted sources are a func() time.Time or RefDateFunc, a time.Time,
// an int64 or int holding Unix milliseconds, or a string in any layout
// spf13/cast understands. nil restores time.Now.
func (g *Generator) SetDefaultRefDate(source any) error {
	fn, err := refDateFrom(source)
	if err != nil {
		return err
	}
	g.refDate = fn
	return nil
}

func refDateFrom(source any) (RefDateFunc, error) {
	switch v := source.(type) {
	case nil:
		return time.Now, nil
	case RefDateFunc:
		if v == nil {
			return time.Now, nil
		}
		return v, nil
	case func() time.Time:
		if v == nil {
			return time.Now, nil
		}
		return v, nil
	case time.Time:
		return fixed(v), nil
	case int64:
		return fixed(time.UnixMilli(v).UTC()), nil
	case int:
		return fixed(time.UnixMilli(int64(v)).UTC()), nil
	case string:
		t, err := cast.ToTimeE(v)
		if err != nil {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid reference date %q: %v", v, err)}
		}
		return fixed(t), nil
	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unsupported reference date source %T", source)}
	}
}

func fixed(t time.Time) RefDateFunc {
	return func() time.Time { return t }
}
