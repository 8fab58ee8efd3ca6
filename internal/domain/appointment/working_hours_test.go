package appointment

import (
	"testing"
	"time"
)

func TestIsWithinWorkingHours(t *testing.T) {
	wh := mondayHours()
	cases := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{"whole day", span("08:00", "18:00"), true},
		{"inside", span("10:00", "10:30"), true},
		{"ends at close", span("17:30", "18:00"), true},
		{"starts at open", span("08:00", "08:30"), true},
		{"one minute past close", span("17:31", "18:01"), false},
		{"before open", span("07:59", "08:29"), false},
		{"wrong weekday", Interval{Start: at("10:00").AddDate(0, 0, 1), End: at("10:30").AddDate(0, 0, 1)}, false},
		{"crosses midnight", Interval{Start: at("23:45"), End: at("23:45").Add(30 * time.Minute)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWithinWorkingHours(tc.candidate, wh); got != tc.want {
				t.Fatalf("IsWithinWorkingHours = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewWorkingHours_StartBeforeEnd(t *testing.T) {
	if _, err := NewWorkingHours(1, time.Monday, MustTimeOfDay("18:00"), MustTimeOfDay("08:00")); !IsKind(err, KindValidation) {
		t.Fatalf("error = %v, want validation", err)
	}
	if _, err := NewWorkingHours(1, time.Monday, MustTimeOfDay("08:00"), MustTimeOfDay("08:00")); !IsKind(err, KindValidation) {
		t.Fatalf("error = %v, want validation", err)
	}
	wh, err := NewWorkingHours(1, time.Monday, MustTimeOfDay("08:00"), MustTimeOfDay("18:00"))
	if err != nil {
		t.Fatalf("NewWorkingHours error: %v", err)
	}
	if wh.Start.String() != "08:00" || wh.End.String() != "18:00" {
		t.Fatalf("got %s-%s", wh.Start, wh.End)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
	tod, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("ParseTimeOfDay error: %v", err)
	}
	if time.Duration(tod) != 9*time.Hour+5*time.Minute {
		t.Fatalf("tod = %v", time.Duration(tod))
	}
	if ClockOf(at("09:05")) != tod {
		t.Fatalf("ClockOf mismatch")
	}
}
