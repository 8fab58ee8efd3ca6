package appointment

import (
	"testing"
	"time"
)

func TestAvailableSlots(t *testing.T) {
	wh := WorkingHours{Day: time.Monday, Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("11:00")}
	busy := []Interval{span("09:30", "10:00")}

	slots := AvailableSlots(wh, monday, 30*time.Minute, busy, at("06:00"))
	want := []TimeSlot{{"09:00", "09:30"}, {"10:00", "10:30"}, {"10:30", "11:00"}}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots (%v), want %d", len(slots), slots, len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot %d = %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestAvailableSlots_SkipsPastAndWrongDay(t *testing.T) {
	wh := WorkingHours{Day: time.Monday, Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("10:00")}

	slots := AvailableSlots(wh, monday, 30*time.Minute, nil, at("09:10"))
	if len(slots) != 1 || slots[0].Start != "09:30" {
		t.Fatalf("slots = %v, want only 09:30", slots)
	}

	if got := AvailableSlots(wh, monday.AddDate(0, 0, 1), 30*time.Minute, nil, at("06:00")); len(got) != 0 {
		t.Fatalf("tuesday slots = %v, want none", got)
	}
}
