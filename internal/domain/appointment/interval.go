package appointment

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrValidation("invalid_interval")
	}
	return Interval{Start: start, End: end}, nil
}

// IntervalFor derives the interval of a service starting at start.
func IntervalFor(start time.Time, durationMinutes int) (Interval, error) {
	return NewInterval(start, start.Add(time.Duration(durationMinutes)*time.Minute))
}

// Overlaps is true when both intervals share any instant. Touching
// endpoints do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// HasConflict scans existing for the first interval overlapping candidate.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}
