package appointment

import "time"

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleStaff  Role = "STAFF"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleStaff
}

// Actor is the authenticated principal performing an operation.
type Actor struct {
	ID   uint
	Role Role
}

// Appointment references its business, staff, service and client by id only.
// StaffUserID is the user account of the assigned staff, copied at booking
// time so authorization needs no lookup.
type Appointment struct {
	ID          uint
	BusinessID  uint
	StaffID     uint
	StaffUserID uint
	ServiceID   uint
	ClientID    uint
	Start       time.Time
	End         time.Time
	Status      Status
	CanceledAt  *time.Time
	CompletedAt *time.Time
}

func (a Appointment) Interval() Interval {
	return Interval{Start: a.Start, End: a.End}
}

// ===============================
// Domain Actions
// ===============================

// Create validates sc with p and returns a Scheduled appointment for clientID.
func Create(sc SchedulingContext, p Policy, clientID uint) (Appointment, error) {
	if err := p.Validate(sc); err != nil {
		return Appointment{}, err
	}
	return Appointment{
		BusinessID:  sc.Business.ID,
		StaffID:     sc.Staff.ID,
		StaffUserID: sc.Staff.UserID,
		ServiceID:   sc.Service.ID,
		ClientID:    clientID,
		Start:       sc.Candidate.Start,
		End:         sc.Candidate.End,
		Status:      InitialStatus(),
	}, nil
}

// CanActorCancel: a staff actor must be the assigned staff; any other actor
// must be the client who booked.
func CanActorCancel(ap Appointment, actor Actor) error {
	if actor.Role == RoleStaff {
		if actor.ID != ap.StaffUserID {
			return ErrAuthorization()
		}
		return nil
	}
	if actor.ID != ap.ClientID {
		return ErrAuthorization()
	}
	return nil
}

func CanActorComplete(ap Appointment, actor Actor) error {
	if actor.Role != RoleStaff || actor.ID != ap.StaffUserID {
		return ErrAuthorization()
	}
	return nil
}

func Cancel(ap *Appointment, actor Actor, now time.Time) error {
	if err := CanActorCancel(*ap, actor); err != nil {
		return err
	}
	if err := CanCancel(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusCanceled
	ap.CanceledAt = &now
	return nil
}

func Complete(ap *Appointment, actor Actor, now time.Time) error {
	if err := CanActorComplete(*ap, actor); err != nil {
		return err
	}
	if err := CanComplete(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusCompleted
	ap.CompletedAt = &now
	return nil
}

// CanActorRead: clients read their own bookings; staff access is scoped to
// business membership by the caller.
func CanActorRead(ap Appointment, actor Actor) error {
	if actor.Role == RoleClient && actor.ID != ap.ClientID {
		return ErrAuthorization()
	}
	return nil
}
