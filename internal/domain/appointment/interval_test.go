package appointment

import "testing"

func TestHasConflict(t *testing.T) {
	cases := []struct {
		name      string
		candidate Interval
		existing  []Interval
		want      bool
	}{
		{"empty schedule", span("10:00", "10:30"), nil, false},
		{"touching after", span("10:30", "11:00"), []Interval{span("10:00", "10:30")}, false},
		{"touching before", span("09:30", "10:00"), []Interval{span("10:00", "10:30")}, false},
		{"partial overlap", span("10:15", "10:45"), []Interval{span("10:00", "10:30")}, true},
		{"contained", span("10:05", "10:20"), []Interval{span("10:00", "10:30")}, true},
		{"containing", span("09:00", "12:00"), []Interval{span("10:00", "10:30")}, true},
		{"identical", span("10:00", "10:30"), []Interval{span("10:00", "10:30")}, true},
		{"second of many", span("14:00", "14:30"), []Interval{span("09:00", "09:30"), span("14:15", "14:45")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasConflict(tc.candidate, tc.existing); got != tc.want {
				t.Fatalf("HasConflict = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasConflict_Symmetric(t *testing.T) {
	intervals := []Interval{
		span("08:00", "08:30"),
		span("08:30", "09:00"),
		span("08:15", "08:45"),
		span("07:00", "12:00"),
		span("11:59", "12:01"),
	}
	for _, a := range intervals {
		for _, b := range intervals {
			if HasConflict(a, []Interval{b}) != HasConflict(b, []Interval{a}) {
				t.Fatalf("asymmetric conflict between %v and %v", a, b)
			}
		}
	}
}

func TestNewInterval_RejectsEmptyAndInverted(t *testing.T) {
	if _, err := NewInterval(at("10:00"), at("10:00")); !IsKind(err, KindValidation) {
		t.Fatalf("empty interval error = %v, want validation", err)
	}
	if _, err := NewInterval(at("11:00"), at("10:00")); !IsKind(err, KindValidation) {
		t.Fatalf("inverted interval error = %v, want validation", err)
	}
	iv, err := IntervalFor(at("10:00"), 30)
	if err != nil {
		t.Fatalf("IntervalFor error: %v", err)
	}
	if !iv.End.Equal(at("10:30")) {
		t.Fatalf("end = %s, want 10:30", iv.End.Format("15:04"))
	}
}
