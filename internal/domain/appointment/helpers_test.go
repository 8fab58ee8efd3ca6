package appointment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// 2026-10-19 is a Monday.
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func at(hm string) time.Time {
	return MustTimeOfDay(hm).On(monday)
}

func span(from, to string) Interval {
	return Interval{Start: at(from), End: at(to)}
}

func mondayHours() WorkingHours {
	return WorkingHours{BusinessID: 1, Day: time.Monday, Start: MustTimeOfDay("08:00"), End: MustTimeOfDay("18:00")}
}

func haircut() Service {
	return Service{ID: 7, Name: "Haircut", DurationMinutes: 30, Price: decimal.NewFromInt(40), BusinessID: 1, Active: true}
}

func validContext(t *testing.T, start string) SchedulingContext {
	t.Helper()
	if monday.Weekday() != time.Monday {
		t.Fatalf("fixture date is %s, want Monday", monday.Weekday())
	}
	sc, err := NewSchedulingContext(ContextInput{
		Business:     Business{ID: 1, Name: "Barba Negra", Type: BusinessBarbershop, Active: true},
		Staff:        Staff{ID: 3, PublicName: "Leo", BusinessID: 1, UserID: 30, Active: true},
		Service:      haircut(),
		Start:        at(start),
		Now:          at("06:00"),
		WorkingHours: mondayHours(),
	})
	if err != nil {
		t.Fatalf("NewSchedulingContext error: %v", err)
	}
	return sc
}
