package timezone

import "time"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to UTC.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	return time.UTC
}

// Clock is the only source of "now" for use cases, so calendar
// computations stay reproducible in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	Loc *time.Location
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.Loc)
}

type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
