package appointment

import (
	"context"
	"time"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

// ======================================================
// CONTEXT BUILDER
// ======================================================

type BuildInput struct {
	BusinessID uint
	StaffID    uint
	ServiceID  uint
	Start      time.Time
}

// BuildContext resolves ids through repo into the flat context evaluated by
// a Policy. A weekday without working hours is reported as outside hours.
func BuildContext(
	ctx context.Context,
	repo domain.Repository,
	in BuildInput,
	now time.Time,
) (domain.SchedulingContext, error) {

	business, err := repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		return domain.SchedulingContext{}, err
	}

	staff, err := repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return domain.SchedulingContext{}, err
	}

	service, err := repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return domain.SchedulingContext{}, err
	}

	switch {
	case !business.Active:
		return domain.SchedulingContext{}, domain.ErrValidation("business_inactive")
	case !staff.Active:
		return domain.SchedulingContext{}, domain.ErrValidation("staff_inactive")
	case !service.Active:
		return domain.SchedulingContext{}, domain.ErrValidation("service_inactive")
	}

	wh, err := repo.GetWorkingHours(ctx, business.ID, in.Start.Weekday())
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.SchedulingContext{}, domain.ErrHours()
		}
		return domain.SchedulingContext{}, err
	}

	appointments, err := repo.ListActiveAppointmentsForStaff(ctx, staff.ID)
	if err != nil {
		return domain.SchedulingContext{}, err
	}

	return domain.NewSchedulingContext(domain.ContextInput{
		Business:          business,
		Staff:             staff,
		Service:           service,
		Start:             in.Start,
		Now:               now,
		WorkingHours:      wh,
		StaffAppointments: appointments,
	})
}
