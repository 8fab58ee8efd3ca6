package appointment

import (
	"context"
	"testing"

	"github.com/Math-l7/scheduling-modular-api/internal/audit"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

func TestCancelAppointment(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Actor
		kind  domain.Kind
	}{
		{name: "client who booked", actor: client},
		{name: "assigned staff", actor: barber},
		{name: "other client", actor: domain.Actor{ID: 501, Role: domain.RoleClient}, kind: domain.KindAuthorization},
		{name: "other staff", actor: stranger, kind: domain.KindAuthorization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ap := f.book(t, "10:00")

			got, err := f.cancel.Execute(context.Background(), tt.actor, ap.ID)

			if tt.kind != "" {
				wantKind(t, err, tt.kind)
				stored, _ := f.repo.GetAppointment(context.Background(), ap.ID)
				if stored.Status != domain.StatusScheduled {
					t.Fatalf("rejected cancel must not change status, got %s", stored.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("cancel: %v", err)
			}
			if got.Status != domain.StatusCanceled || got.CanceledAt == nil {
				t.Fatalf("expected canceled with timestamp, got %+v", got)
			}
			if !got.CanceledAt.Equal(now) {
				t.Fatalf("expected canceled_at %s, got %s", now, got.CanceledAt)
			}
		})
	}
}

func TestCancelAppointment_Twice(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00")

	if _, err := f.cancel.Execute(context.Background(), client, ap.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}

	_, err := f.cancel.Execute(context.Background(), client, ap.ID)
	wantKind(t, err, domain.KindState)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.cancel.Execute(context.Background(), client, 12345)
	wantKind(t, err, domain.KindNotFound)
}

func TestCompleteAppointment(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00")

	_, err := f.complete.Execute(context.Background(), client, ap.ID)
	wantKind(t, err, domain.KindAuthorization)

	_, err = f.complete.Execute(context.Background(), stranger, ap.ID)
	wantKind(t, err, domain.KindAuthorization)

	got, err := f.complete.Execute(context.Background(), barber, ap.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != domain.StatusCompleted || got.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", got)
	}

	_, err = f.complete.Execute(context.Background(), barber, ap.ID)
	wantKind(t, err, domain.KindState)

	_, err = f.cancel.Execute(context.Background(), barber, ap.ID)
	wantKind(t, err, domain.KindState)

	actions := f.rec.actions()
	if actions[len(actions)-1] != audit.ActionAppointmentCompleted {
		t.Fatalf("expected completion to be audited last, got %v", actions)
	}
}

func TestCompleteAppointment_CanceledIsTerminal(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00")

	if _, err := f.cancel.Execute(context.Background(), barber, ap.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err := f.complete.Execute(context.Background(), barber, ap.ID)
	wantKind(t, err, domain.KindState)
}
