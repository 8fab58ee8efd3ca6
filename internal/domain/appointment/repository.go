package appointment

import (
	"context"
	"time"
)

// Repository is what the engine's callers need from storage. Lookups of a
// missing record return an *Error of KindNotFound.
type Repository interface {
	// -------- Tenant --------
	GetBusiness(ctx context.Context, id uint) (Business, error)
	GetStaff(ctx context.Context, id uint) (Staff, error)
	GetService(ctx context.Context, id uint) (Service, error)
	ListStaffByUser(ctx context.Context, userID uint) ([]Staff, error)
	IsStaffOfBusiness(ctx context.Context, userID, businessID uint) (bool, error)

	// -------- Schedule --------
	GetWorkingHours(ctx context.Context, businessID uint, day time.Weekday) (WorkingHours, error)
	ListActiveAppointmentsForStaff(ctx context.Context, staffID uint) ([]Appointment, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *Appointment) error
	GetAppointment(ctx context.Context, id uint) (Appointment, error)
	UpdateAppointment(ctx context.Context, ap *Appointment) error
	ListAppointmentsByBusiness(ctx context.Context, businessID uint) ([]Appointment, error)
	ListAppointmentsByStaff(ctx context.Context, staffID uint) ([]Appointment, error)
	ListAppointmentsByClient(ctx context.Context, clientID uint) ([]Appointment, error)
	ListAppointmentsForPeriod(ctx context.Context, staffID uint, from, to time.Time) ([]Appointment, error)

	// WithinStaffTx runs fn against a repository bound to one transaction
	// that holds the staff member's row lock.
	WithinStaffTx(ctx context.Context, staffID uint, fn func(tx Repository) error) error
}

// StaffLocker serializes booking attempts per staff member across
// processes.
type StaffLocker interface {
	WithStaffLock(ctx context.Context, staffID uint, fn func(ctx context.Context) error) error
}
