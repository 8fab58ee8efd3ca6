package appointment

// Policy decides whether a scheduling context may become an appointment.
// A nil error means accepted.
type Policy interface {
	Validate(sc SchedulingContext) error
}

// BarberShopPolicy applies the single-day, single-staff rules. Checks run
// in a fixed order and the first violation is returned.
type BarberShopPolicy struct{}

func (BarberShopPolicy) Validate(sc SchedulingContext) error {
	if HasConflict(sc.Candidate, sc.ActiveIntervals()) {
		return ErrConflict()
	}

	if !IsWithinWorkingHours(sc.Candidate, sc.WorkingHours) {
		return ErrHours()
	}

	if !IsFuture(sc.Candidate.Start, sc.Now) {
		return ErrPastTime()
	}

	if !IsDurationValid(sc.Candidate, sc.Service) {
		return ErrDuration()
	}

	if !SameBusiness(sc.Business, sc.Staff, sc.Service) {
		return ErrTenant()
	}

	return nil
}

var _ Policy = BarberShopPolicy{}
