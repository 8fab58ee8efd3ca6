package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/models"
)

const pgExclusionViolation = "23P01"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusiness(ctx context.Context, id uint) (domain.Business, error) {
	var row models.Business
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return domain.Business{}, notFound(err, "business")
	}
	return BusinessToDomain(row), nil
}

func (r *AppointmentGormRepository) GetStaff(ctx context.Context, id uint) (domain.Staff, error) {
	var row models.Staff
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return domain.Staff{}, notFound(err, "staff")
	}
	return StaffToDomain(row), nil
}

func (r *AppointmentGormRepository) GetService(ctx context.Context, id uint) (domain.Service, error) {
	var row models.Service
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return domain.Service{}, notFound(err, "service")
	}
	return ServiceToDomain(row), nil
}

func (r *AppointmentGormRepository) ListStaffByUser(ctx context.Context, userID uint) ([]domain.Staff, error) {
	var rows []models.Staff
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Staff, 0, len(rows))
	for _, row := range rows {
		out = append(out, StaffToDomain(row))
	}
	return out, nil
}

func (r *AppointmentGormRepository) IsStaffOfBusiness(ctx context.Context, userID, businessID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(ctx context.Context, businessID uint, day time.Weekday) (domain.WorkingHours, error) {
	var row models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND weekday = ?", businessID, int(day)).
		First(&row).Error; err != nil {
		return domain.WorkingHours{}, notFound(err, "working_hours")
	}
	return WorkingHoursToDomain(row)
}

// ListActiveAppointmentsForStaff filters by appointment status; canceled and
// completed appointments never block a slot.
func (r *AppointmentGormRepository) ListActiveAppointmentsForStaff(ctx context.Context, staffID uint) ([]domain.Appointment, error) {
	return r.findAppointments(ctx, "staff_id = ? AND status = ?", staffID, string(domain.StatusScheduled))
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *domain.Appointment) error {
	row := AppointmentFromDomain(*ap)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if IsExclusionConflict(err) {
			return domain.ErrConflict()
		}
		return fmt.Errorf("create appointment: %w", err)
	}
	ap.ID = row.ID
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(ctx context.Context, id uint) (domain.Appointment, error) {
	var row models.Appointment
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return domain.Appointment{}, notFound(err, "appointment")
	}
	return AppointmentToDomain(row), nil
}

func (r *AppointmentGormRepository) UpdateAppointment(ctx context.Context, ap *domain.Appointment) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":       string(ap.Status),
			"canceled_at":  ap.CanceledAt,
			"completed_at": ap.CompletedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound("appointment")
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointmentsByBusiness(ctx context.Context, businessID uint) ([]domain.Appointment, error) {
	return r.findAppointments(ctx, "business_id = ?", businessID)
}

func (r *AppointmentGormRepository) ListAppointmentsByStaff(ctx context.Context, staffID uint) ([]domain.Appointment, error) {
	return r.findAppointments(ctx, "staff_id = ?", staffID)
}

func (r *AppointmentGormRepository) ListAppointmentsByClient(ctx context.Context, clientID uint) ([]domain.Appointment, error) {
	return r.findAppointments(ctx, "client_id = ?", clientID)
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(ctx context.Context, staffID uint, from, to time.Time) ([]domain.Appointment, error) {
	return r.findAppointments(ctx, "staff_id = ? AND start_time >= ? AND start_time < ?", staffID, from, to)
}

func (r *AppointmentGormRepository) findAppointments(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		out = append(out, AppointmentToDomain(row))
	}
	return out, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

// WithinStaffTx locks the staff row FOR UPDATE so concurrent bookings for
// the same staff serialize on the database even without an external lock.
func (r *AppointmentGormRepository) WithinStaffTx(ctx context.Context, staffID uint, fn func(tx domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staff models.Staff
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&staff, staffID).Error; err != nil {
			return notFound(err, "staff")
		}
		return fn(&AppointmentGormRepository{db: tx})
	})
}

func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound(entity)
	}
	return fmt.Errorf("load %s: %w", entity, err)
}

// IsExclusionConflict reports a violation of an EXCLUDE constraint, which
// on the appointments table means an overlapping scheduled booking.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)
