package appointment

import "testing"

func scheduled() Appointment {
	return Appointment{
		ID: 1, BusinessID: 1, StaffID: 3, StaffUserID: 30, ServiceID: 7, ClientID: 50,
		Start: at("10:00"), End: at("10:30"), Status: StatusScheduled,
	}
}

func TestCreate_Scheduled(t *testing.T) {
	sc := validContext(t, "10:00")
	ap, err := Create(sc, BarberShopPolicy{}, 50)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if ap.Status != StatusScheduled {
		t.Fatalf("status = %s, want scheduled", ap.Status)
	}
	if ap.StaffUserID != 30 || ap.ClientID != 50 || ap.BusinessID != 1 || ap.ServiceID != 7 {
		t.Fatalf("unexpected references: %+v", ap)
	}
	if !ap.End.Equal(at("10:30")) {
		t.Fatalf("end = %s, want 10:30", ap.End.Format("15:04"))
	}
}

func TestCreate_RejectedByPolicy(t *testing.T) {
	sc := validContext(t, "10:15")
	sc.StaffAppointments = []Appointment{booked("10:00", "10:30", StatusScheduled)}
	if _, err := Create(sc, BarberShopPolicy{}, 50); !IsKind(err, KindConflict) {
		t.Fatalf("error = %v, want conflict", err)
	}
}

func TestCancel_Authorization(t *testing.T) {
	now := at("09:00")
	cases := []struct {
		name  string
		actor Actor
		want  Kind
	}{
		{"own client", Actor{ID: 50, Role: RoleClient}, ""},
		{"assigned staff", Actor{ID: 30, Role: RoleStaff}, ""},
		{"other client", Actor{ID: 51, Role: RoleClient}, KindAuthorization},
		{"other staff", Actor{ID: 31, Role: RoleStaff}, KindAuthorization},
		{"staff who is the client but not assigned", Actor{ID: 50, Role: RoleStaff}, KindAuthorization},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ap := scheduled()
			err := Cancel(&ap, tc.actor, now)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("Cancel error: %v", err)
				}
				if ap.Status != StatusCanceled || ap.CanceledAt == nil {
					t.Fatalf("not canceled: %+v", ap)
				}
				return
			}
			if !IsKind(err, tc.want) {
				t.Fatalf("error = %v, want %s", err, tc.want)
			}
			if ap.Status != StatusScheduled {
				t.Fatalf("status changed on rejection: %s", ap.Status)
			}
		})
	}
}

func TestComplete_Authorization(t *testing.T) {
	now := at("11:00")
	for _, actor := range []Actor{{ID: 50, Role: RoleClient}, {ID: 31, Role: RoleStaff}, {ID: 30, Role: RoleClient}} {
		ap := scheduled()
		if err := Complete(&ap, actor, now); !IsKind(err, KindAuthorization) {
			t.Fatalf("actor %+v: error = %v, want authorization", actor, err)
		}
	}
}

func TestComplete_Twice(t *testing.T) {
	ap := scheduled()
	staff := Actor{ID: 30, Role: RoleStaff}
	if err := Complete(&ap, staff, at("11:00")); err != nil {
		t.Fatalf("first Complete error: %v", err)
	}
	if ap.Status != StatusCompleted || ap.CompletedAt == nil {
		t.Fatalf("not completed: %+v", ap)
	}
	if err := Complete(&ap, staff, at("11:05")); !IsKind(err, KindState) {
		t.Fatalf("second Complete error = %v, want state", err)
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	staff := Actor{ID: 30, Role: RoleStaff}
	for _, st := range []Status{StatusCanceled, StatusCompleted} {
		ap := scheduled()
		ap.Status = st
		if err := Cancel(&ap, staff, at("09:00")); !IsKind(err, KindState) {
			t.Fatalf("cancel from %s: error = %v, want state", st, err)
		}
		if err := Complete(&ap, staff, at("09:00")); !IsKind(err, KindState) {
			t.Fatalf("complete from %s: error = %v, want state", st, err)
		}
		if !st.Terminal() {
			t.Fatalf("%s should be terminal", st)
		}
	}
}

func TestCanActorRead(t *testing.T) {
	ap := scheduled()
	if err := CanActorRead(ap, Actor{ID: 50, Role: RoleClient}); err != nil {
		t.Fatalf("own client read: %v", err)
	}
	if err := CanActorRead(ap, Actor{ID: 51, Role: RoleClient}); !IsKind(err, KindAuthorization) {
		t.Fatalf("other client read: %v", err)
	}
}
