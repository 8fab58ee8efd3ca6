package appointment

import (
	"fmt"
	"time"
)

// TimeOfDay is an offset from local midnight.
type TimeOfDay time.Duration

const timeOfDayLayout = "15:04"

// ParseTimeOfDay parses "HH:MM" (24h).
func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, hm)
	if err != nil {
		return 0, ErrValidation("invalid_time_of_day")
	}
	return TimeOfDay(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

func MustTimeOfDay(hm string) TimeOfDay {
	tod, err := ParseTimeOfDay(hm)
	if err != nil {
		panic(fmt.Sprintf("appointment: bad time of day %q", hm))
	}
	return tod
}

// ClockOf extracts the wall-clock component of t in its own location.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay(time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()))
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// On places the time of day on the calendar date of day.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(time.Duration(t))
}

// WorkingHours is the opening window of one business on one weekday.
// There is at most one record per (BusinessID, Day).
type WorkingHours struct {
	BusinessID uint
	Day        time.Weekday
	Start      TimeOfDay
	End        TimeOfDay
}

func NewWorkingHours(businessID uint, day time.Weekday, start, end TimeOfDay) (WorkingHours, error) {
	if day < time.Sunday || day > time.Saturday {
		return WorkingHours{}, ErrValidation("invalid_day_of_week")
	}
	if start >= end {
		return WorkingHours{}, ErrValidation("start_must_be_before_end")
	}
	return WorkingHours{BusinessID: businessID, Day: day, Start: start, End: end}, nil
}

// IsWithinWorkingHours compares only the time-of-day of the candidate
// against the window. Both bounds are inclusive. A candidate that ends on
// another calendar date than it starts is never inside a single-day window.
func IsWithinWorkingHours(candidate Interval, wh WorkingHours) bool {
	if candidate.Start.Weekday() != wh.Day {
		return false
	}
	sy, sm, sd := candidate.Start.Date()
	ey, em, ed := candidate.End.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}
	if ClockOf(candidate.Start) < wh.Start {
		return false
	}
	if ClockOf(candidate.End) > wh.End {
		return false
	}
	return true
}
