package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ======================================================
// BY BUSINESS
// ======================================================

// ByBusiness is restricted to staff of the business.
func (uc *ListAppointments) ByBusiness(
	ctx context.Context,
	actor domain.Actor,
	businessID uint,
) ([]domain.Appointment, error) {

	if _, err := uc.repo.GetBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	if err := uc.requireStaffOf(ctx, actor, businessID); err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsByBusiness(ctx, businessID)
}

// ======================================================
// BY STAFF (ME)
// ======================================================

// ByStaff lists the appointments assigned to every staff record of actor.
func (uc *ListAppointments) ByStaff(
	ctx context.Context,
	actor domain.Actor,
) ([]domain.Appointment, error) {

	if actor.Role != domain.RoleStaff {
		return nil, domain.ErrAuthorization()
	}

	staff, err := uc.repo.ListStaffByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, domain.ErrNotFound("staff")
	}

	out := []domain.Appointment{}
	for _, st := range staff {
		aps, err := uc.repo.ListAppointmentsByStaff(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, aps...)
	}

	sortByStart(out)
	return out, nil
}

// ======================================================
// BY CLIENT (ME)
// ======================================================

func (uc *ListAppointments) ByClient(
	ctx context.Context,
	actor domain.Actor,
) ([]domain.Appointment, error) {
	return uc.repo.ListAppointmentsByClient(ctx, actor.ID)
}

// ======================================================
// STAFF SCHEDULE
// ======================================================

// StaffSchedule lists a staff member's appointments starting in [from, to).
func (uc *ListAppointments) StaffSchedule(
	ctx context.Context,
	actor domain.Actor,
	staffID uint,
	from, to time.Time,
) ([]domain.Appointment, error) {

	if !from.Before(to) {
		return nil, domain.ErrValidation("invalid_period")
	}

	staff, err := uc.repo.GetStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireStaffOf(ctx, actor, staff.BusinessID); err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsForPeriod(ctx, staffID, from, to)
}

func (uc *ListAppointments) requireStaffOf(ctx context.Context, actor domain.Actor, businessID uint) error {
	if actor.Role != domain.RoleStaff {
		return domain.ErrAuthorization()
	}
	ok, err := uc.repo.IsStaffOfBusiness(ctx, actor.ID, businessID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAuthorization()
	}
	return nil
}

// ======================================================
// PERIODS
// ======================================================

// DayWindow is the [00:00, next 00:00) window of the calendar day of t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// MonthWindow is the window covering the whole month in loc.
func MonthWindow(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func sortByStart(aps []domain.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		if aps[i].Start.Equal(aps[j].Start) {
			return aps[i].ID < aps[j].ID
		}
		return aps[i].Start.Before(aps[j].Start)
	})
}
