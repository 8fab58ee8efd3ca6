package appointment

import (
	"errors"
	"testing"
	"time"
)

func booked(from, to string, status Status) Appointment {
	return Appointment{ID: 99, StaffID: 3, Start: at(from), End: at(to), Status: status}
}

func TestBarberShopPolicy_Accepts(t *testing.T) {
	sc := validContext(t, "10:00")
	if err := (BarberShopPolicy{}).Validate(sc); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestBarberShopPolicy_EachRule(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(sc *SchedulingContext)
		want   Kind
	}{
		{"conflict", func(sc *SchedulingContext) {
			sc.StaffAppointments = []Appointment{booked("10:00", "10:30", StatusScheduled)}
		}, KindConflict},
		{"outside hours", func(sc *SchedulingContext) {
			sc.WorkingHours.End = MustTimeOfDay("10:15")
		}, KindHours},
		{"in the past", func(sc *SchedulingContext) {
			sc.Now = at("10:00")
		}, KindPastTime},
		{"duration mismatch", func(sc *SchedulingContext) {
			sc.Candidate.End = sc.Candidate.End.Add(-time.Minute)
		}, KindDuration},
		{"staff of another business", func(sc *SchedulingContext) {
			sc.Staff.BusinessID = 2
		}, KindTenant},
		{"service of another business", func(sc *SchedulingContext) {
			sc.Service.BusinessID = 2
		}, KindTenant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := validContext(t, "10:00")
			tc.mutate(&sc)
			err := (BarberShopPolicy{}).Validate(sc)
			if !IsKind(err, tc.want) {
				t.Fatalf("error = %v, want kind %s", err, tc.want)
			}
		})
	}
}

func TestBarberShopPolicy_Precedence(t *testing.T) {
	// Conflicting and outside working hours at once: conflict wins.
	sc := validContext(t, "10:00")
	sc.StaffAppointments = []Appointment{booked("10:00", "10:30", StatusScheduled)}
	sc.WorkingHours.Start = MustTimeOfDay("12:00")
	sc.Now = at("11:00")
	sc.Staff.BusinessID = 5

	err := (BarberShopPolicy{}).Validate(sc)
	if !IsKind(err, KindConflict) {
		t.Fatalf("error = %v, want conflict", err)
	}

	sc.StaffAppointments = nil
	if err := (BarberShopPolicy{}).Validate(sc); !IsKind(err, KindHours) {
		t.Fatalf("error = %v, want hours", err)
	}

	sc.WorkingHours.Start = MustTimeOfDay("08:00")
	if err := (BarberShopPolicy{}).Validate(sc); !IsKind(err, KindPastTime) {
		t.Fatalf("error = %v, want past time", err)
	}

	sc.Now = at("06:00")
	if err := (BarberShopPolicy{}).Validate(sc); !IsKind(err, KindTenant) {
		t.Fatalf("error = %v, want tenant", err)
	}
}

func TestBarberShopPolicy_IgnoresTerminalAppointments(t *testing.T) {
	sc := validContext(t, "10:00")
	sc.StaffAppointments = []Appointment{
		booked("10:00", "10:30", StatusCanceled),
		booked("10:15", "10:45", StatusCompleted),
	}
	if err := (BarberShopPolicy{}).Validate(sc); err != nil {
		t.Fatalf("terminal appointments must not block: %v", err)
	}
}

func TestEvaluate_DerivesEnd(t *testing.T) {
	sc, err := Evaluate(BarberShopPolicy{}, ContextInput{
		Business:     Business{ID: 1, Active: true},
		Staff:        Staff{ID: 3, BusinessID: 1, UserID: 30, Active: true},
		Service:      haircut(),
		Start:        at("10:00"),
		Now:          at("06:00"),
		WorkingHours: mondayHours(),
		StaffAppointments: []Appointment{
			booked("09:30", "10:00", StatusScheduled),
			booked("10:30", "11:00", StatusScheduled),
		},
	})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !sc.Candidate.End.Equal(at("10:30")) {
		t.Fatalf("end = %s, want 10:30", sc.Candidate.End.Format("15:04"))
	}
}

func TestEvaluate_InvalidService(t *testing.T) {
	svc := haircut()
	svc.DurationMinutes = 0
	_, err := Evaluate(BarberShopPolicy{}, ContextInput{Service: svc, Start: at("10:00")})
	if !IsKind(err, KindValidation) {
		t.Fatalf("error = %v, want validation", err)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := errors.Join(errors.New("tx failed"), ErrConflict())
	k, ok := KindOf(err)
	if !ok || k != KindConflict {
		t.Fatalf("KindOf = %q, %v", k, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("plain error should carry no kind")
	}
	if ErrNotFound("staff").Error() != "staff_not_found" {
		t.Fatalf("unexpected code %q", ErrNotFound("staff").Error())
	}
}
