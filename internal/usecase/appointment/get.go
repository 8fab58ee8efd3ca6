package appointment

import (
	"context"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute returns the appointment when actor may see it. Clients see their
// own bookings, staff see bookings of the businesses they work for.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (domain.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return domain.Appointment{}, err
	}

	if err := authorizeRead(ctx, uc.repo, ap, actor); err != nil {
		return domain.Appointment{}, err
	}

	return ap, nil
}

func authorizeRead(ctx context.Context, repo domain.Repository, ap domain.Appointment, actor domain.Actor) error {
	if actor.Role != domain.RoleStaff {
		return domain.CanActorRead(ap, actor)
	}

	ok, err := repo.IsStaffOfBusiness(ctx, actor.ID, ap.BusinessID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAuthorization()
	}
	return nil
}
