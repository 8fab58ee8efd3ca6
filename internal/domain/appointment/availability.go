package appointment

import "time"

type AvailabilityInput struct {
	BusinessID uint
	StaffID    uint
	ServiceID  uint
	Date       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailableSlots steps through the working window of day in slot-sized
// increments and keeps the slots that are free and start after now.
func AvailableSlots(wh WorkingHours, day time.Time, slot time.Duration, busy []Interval, now time.Time) []TimeSlot {
	slots := []TimeSlot{}
	if slot <= 0 || day.Weekday() != wh.Day {
		return slots
	}

	dayStart := wh.Start.On(day)
	dayEnd := wh.End.On(day)

	for cur := dayStart; !cur.Add(slot).After(dayEnd); cur = cur.Add(slot) {
		candidate := Interval{Start: cur, End: cur.Add(slot)}

		if !IsFuture(candidate.Start, now) {
			continue
		}
		if HasConflict(candidate, busy) {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: candidate.Start.Format(timeOfDayLayout),
			End:   candidate.End.Format(timeOfDayLayout),
		})
	}

	return slots
}
