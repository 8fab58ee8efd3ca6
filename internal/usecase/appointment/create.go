package appointment

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Math-l7/scheduling-modular-api/internal/audit"
	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

var tracer = otel.Tracer("github.com/Math-l7/scheduling-modular-api/internal/usecase/appointment")

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	BusinessID uint
	StaffID    uint
	ServiceID  uint
	Start      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker domain.StaffLocker
	policy domain.Policy
	clock  clock.Clock
	audit  audit.Recorder
	logger *slog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	locker domain.StaffLocker,
	policy domain.Policy,
	clk clock.Clock,
	rec audit.Recorder,
	logger *slog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		policy: policy,
		clock:  clk,
		audit:  rec,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books the slot for actor as the client. Reading the staff's
// schedule, validating and persisting happen under the staff lock and in
// one staff-locked transaction.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateInput,
) (domain.Appointment, error) {

	ctx, span := tracer.Start(ctx, "appointment.create", trace.WithAttributes(
		attribute.Int64("business.id", int64(in.BusinessID)),
		attribute.Int64("staff.id", int64(in.StaffID)),
		attribute.Int64("service.id", int64(in.ServiceID)),
	))
	defer span.End()

	var created domain.Appointment

	err := uc.locker.WithStaffLock(ctx, in.StaffID, func(ctx context.Context) error {
		return uc.repo.WithinStaffTx(ctx, in.StaffID, func(tx domain.Repository) error {

			sc, err := BuildContext(ctx, tx, BuildInput{
				BusinessID: in.BusinessID,
				StaffID:    in.StaffID,
				ServiceID:  in.ServiceID,
				Start:      in.Start,
			}, uc.clock.Now())
			if err != nil {
				return err
			}

			ap, err := domain.Create(sc, uc.policy, actor.ID)
			if err != nil {
				return err
			}

			if err := tx.CreateAppointment(ctx, &ap); err != nil {
				return err
			}

			created = ap
			return nil
		})
	})

	if err != nil {
		if kind, ok := domain.KindOf(err); ok {
			span.SetAttributes(attribute.String("rejection", string(kind)))
		} else {
			span.SetStatus(codes.Error, err.Error())
		}

		if domain.IsKind(err, domain.KindConflict) {
			uc.audit.Dispatch(audit.Event{
				BusinessID: in.BusinessID,
				UserID:     &actor.ID,
				Action:     audit.ActionAppointmentConflict,
				Entity:     "appointment",
				Metadata: map[string]any{
					"staff_id": in.StaffID,
					"start":    in.Start,
				},
			})
		}
		return domain.Appointment{}, err
	}

	span.SetAttributes(attribute.Int64("appointment.id", int64(created.ID)))

	uc.audit.Dispatch(audit.Event{
		BusinessID: created.BusinessID,
		UserID:     &actor.ID,
		Action:     audit.ActionAppointmentCreated,
		Entity:     "appointment",
		EntityID:   &created.ID,
	})

	uc.logger.Info("appointment created",
		"appointment_id", created.ID,
		"staff_id", created.StaffID,
		"start", created.Start,
	)

	return created, nil
}
