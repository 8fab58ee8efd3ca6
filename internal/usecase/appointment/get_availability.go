package appointment

import (
	"context"
	"time"

	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetAvailability(repo domain.Repository, clk clock.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clk}
}

// Execute lists the free service-sized slots of the staff member on
// in.Date. A day without working hours has no slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	business, err := uc.repo.GetBusiness(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}
	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if !domain.SameBusiness(business, staff, service) {
		return nil, domain.ErrTenant()
	}
	if !business.Active || !staff.Active || !service.Active {
		return []domain.TimeSlot{}, nil
	}

	wh, err := uc.repo.GetWorkingHours(ctx, business.ID, in.Date.Weekday())
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return []domain.TimeSlot{}, nil
		}
		return nil, err
	}

	from, to := DayWindow(in.Date)
	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, staff.ID, from, to)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(aps))
	for _, ap := range aps {
		if ap.Status == domain.StatusScheduled {
			busy = append(busy, ap.Interval())
		}
	}

	slot := time.Duration(service.DurationMinutes) * time.Minute
	return domain.AvailableSlots(wh, in.Date, slot, busy, uc.clock.Now()), nil
}
