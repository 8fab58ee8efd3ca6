package appointment

import (
	"context"
	"log/slog"

	"github.com/Math-l7/scheduling-modular-api/internal/audit"
	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

type CompleteAppointment struct {
	repo   domain.Repository
	clock  clock.Clock
	audit  audit.Recorder
	logger *slog.Logger
}

func NewCompleteAppointment(
	repo domain.Repository,
	clk clock.Clock,
	rec audit.Recorder,
	logger *slog.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		clock:  clk,
		audit:  rec,
		logger: logger,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (domain.Appointment, error) {

	ap, err := transition(ctx, uc.repo, appointmentID, func(ap *domain.Appointment) error {
		return domain.Complete(ap, actor, uc.clock.Now())
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: ap.BusinessID,
		UserID:     &actor.ID,
		Action:     audit.ActionAppointmentCompleted,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})
	uc.logger.Info("appointment completed", "appointment_id", ap.ID, "actor_id", actor.ID)

	return ap, nil
}
