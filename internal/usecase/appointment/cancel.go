package appointment

import (
	"context"
	"log/slog"

	"github.com/Math-l7/scheduling-modular-api/internal/audit"
	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

type CancelAppointment struct {
	repo   domain.Repository
	clock  clock.Clock
	audit  audit.Recorder
	logger *slog.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	clk clock.Clock,
	rec audit.Recorder,
	logger *slog.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		clock:  clk,
		audit:  rec,
		logger: logger,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (domain.Appointment, error) {

	ap, err := transition(ctx, uc.repo, appointmentID, func(ap *domain.Appointment) error {
		return domain.Cancel(ap, actor, uc.clock.Now())
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: ap.BusinessID,
		UserID:     &actor.ID,
		Action:     audit.ActionAppointmentCanceled,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})
	uc.logger.Info("appointment canceled", "appointment_id", ap.ID, "actor_id", actor.ID)

	return ap, nil
}

// transition reloads the appointment inside the staff-locked transaction so
// concurrent transitions on the same appointment cannot both succeed.
func transition(
	ctx context.Context,
	repo domain.Repository,
	appointmentID uint,
	apply func(ap *domain.Appointment) error,
) (domain.Appointment, error) {

	current, err := repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, err
	}

	var out domain.Appointment
	err = repo.WithinStaffTx(ctx, current.StaffID, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		if err := apply(&ap); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(ctx, &ap); err != nil {
			return err
		}
		out = ap
		return nil
	})
	return out, err
}
