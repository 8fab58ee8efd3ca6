package clock

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Clock yields the current wall-clock time in the business's local zone.
// Stored appointment times are already local; no conversion happens here.
type Clock interface {
	Now() time.Time
}

type System struct {
	loc *time.Location
}

func NewSystem(tz string) System {
	return System{loc: Location(tz)}
}

func (s System) Now() time.Time {
	return time.Now().In(s.loc)
}

func (s System) Location() *time.Location {
	return s.loc
}

// Fixed always reports the same instant. Used by tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
