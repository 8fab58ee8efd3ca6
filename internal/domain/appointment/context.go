package appointment

import "time"

// SchedulingContext is the flat, read-only input of a Policy. It is built
// for one request and discarded afterwards.
type SchedulingContext struct {
	Business     Business
	Staff        Staff
	Service      Service
	Candidate    Interval
	WorkingHours WorkingHours
	// StaffAppointments may contain any status; only Scheduled ones block.
	StaffAppointments []Appointment
	Now               time.Time
}

// ContextInput carries what a caller resolved from its repositories.
type ContextInput struct {
	Business          Business
	Staff             Staff
	Service           Service
	Start             time.Time
	Now               time.Time
	WorkingHours      WorkingHours
	StaffAppointments []Appointment
}

// NewSchedulingContext derives the candidate end from the service duration.
func NewSchedulingContext(in ContextInput) (SchedulingContext, error) {
	if err := in.Service.Validate(); err != nil {
		return SchedulingContext{}, err
	}
	candidate, err := IntervalFor(in.Start, in.Service.DurationMinutes)
	if err != nil {
		return SchedulingContext{}, err
	}
	return SchedulingContext{
		Business:          in.Business,
		Staff:             in.Staff,
		Service:           in.Service,
		Candidate:         candidate,
		WorkingHours:      in.WorkingHours,
		StaffAppointments: in.StaffAppointments,
		Now:               in.Now,
	}, nil
}

// ActiveIntervals returns the intervals that count for conflict detection.
func (sc SchedulingContext) ActiveIntervals() []Interval {
	out := make([]Interval, 0, len(sc.StaffAppointments))
	for _, ap := range sc.StaffAppointments {
		if ap.Status != StatusScheduled {
			continue
		}
		out = append(out, ap.Interval())
	}
	return out
}

// Evaluate builds the context and runs p against it.
func Evaluate(p Policy, in ContextInput) (SchedulingContext, error) {
	sc, err := NewSchedulingContext(in)
	if err != nil {
		return SchedulingContext{}, err
	}
	if err := p.Validate(sc); err != nil {
		return SchedulingContext{}, err
	}
	return sc, nil
}
