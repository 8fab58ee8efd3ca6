package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

// MemoryRepository keeps everything in maps. It backs tests and local
// experiments; WithinStaffTx gives no isolation beyond the caller's lock.
type MemoryRepository struct {
	mu           sync.RWMutex
	businesses   map[uint]domain.Business
	staff        map[uint]domain.Staff
	services     map[uint]domain.Service
	hours        map[hoursKey]domain.WorkingHours
	appointments map[uint]domain.Appointment
	nextID       uint
}

type hoursKey struct {
	businessID uint
	day        time.Weekday
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		businesses:   make(map[uint]domain.Business),
		staff:        make(map[uint]domain.Staff),
		services:     make(map[uint]domain.Service),
		hours:        make(map[hoursKey]domain.WorkingHours),
		appointments: make(map[uint]domain.Appointment),
	}
}

// -------- seeding --------

func (r *MemoryRepository) PutBusiness(b domain.Business) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.businesses[b.ID] = b
}

func (r *MemoryRepository) PutStaff(s domain.Staff) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staff[s.ID] = s
}

func (r *MemoryRepository) PutService(s domain.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[s.ID] = s
}

// PutWorkingHours replaces the record of that business and weekday.
func (r *MemoryRepository) PutWorkingHours(wh domain.WorkingHours) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hours[hoursKey{wh.BusinessID, wh.Day}] = wh
}

// -------- domain.Repository --------

func (r *MemoryRepository) GetBusiness(ctx context.Context, id uint) (domain.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.businesses[id]
	if !ok {
		return domain.Business{}, domain.ErrNotFound("business")
	}
	return b, nil
}

func (r *MemoryRepository) GetStaff(ctx context.Context, id uint) (domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.staff[id]
	if !ok {
		return domain.Staff{}, domain.ErrNotFound("staff")
	}
	return s, nil
}

func (r *MemoryRepository) GetService(ctx context.Context, id uint) (domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[id]
	if !ok {
		return domain.Service{}, domain.ErrNotFound("service")
	}
	return s, nil
}

func (r *MemoryRepository) ListStaffByUser(ctx context.Context, userID uint) ([]domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Staff
	for _, s := range r.staff {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) IsStaffOfBusiness(ctx context.Context, userID, businessID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.staff {
		if s.UserID == userID && s.BusinessID == businessID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) GetWorkingHours(ctx context.Context, businessID uint, day time.Weekday) (domain.WorkingHours, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wh, ok := r.hours[hoursKey{businessID, day}]
	if !ok {
		return domain.WorkingHours{}, domain.ErrNotFound("working_hours")
	}
	return wh, nil
}

func (r *MemoryRepository) ListActiveAppointmentsForStaff(ctx context.Context, staffID uint) ([]domain.Appointment, error) {
	return r.filter(func(ap domain.Appointment) bool {
		return ap.StaffID == staffID && ap.Status == domain.StatusScheduled
	}), nil
}

func (r *MemoryRepository) CreateAppointment(ctx context.Context, ap *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryRepository) GetAppointment(ctx context.Context, id uint) (domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ap, ok := r.appointments[id]
	if !ok {
		return domain.Appointment{}, domain.ErrNotFound("appointment")
	}
	return ap, nil
}

func (r *MemoryRepository) UpdateAppointment(ctx context.Context, ap *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return domain.ErrNotFound("appointment")
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryRepository) ListAppointmentsByBusiness(ctx context.Context, businessID uint) ([]domain.Appointment, error) {
	return r.filter(func(ap domain.Appointment) bool { return ap.BusinessID == businessID }), nil
}

func (r *MemoryRepository) ListAppointmentsByStaff(ctx context.Context, staffID uint) ([]domain.Appointment, error) {
	return r.filter(func(ap domain.Appointment) bool { return ap.StaffID == staffID }), nil
}

func (r *MemoryRepository) ListAppointmentsByClient(ctx context.Context, clientID uint) ([]domain.Appointment, error) {
	return r.filter(func(ap domain.Appointment) bool { return ap.ClientID == clientID }), nil
}

func (r *MemoryRepository) ListAppointmentsForPeriod(ctx context.Context, staffID uint, from, to time.Time) ([]domain.Appointment, error) {
	return r.filter(func(ap domain.Appointment) bool {
		return ap.StaffID == staffID && !ap.Start.Before(from) && ap.Start.Before(to)
	}), nil
}

func (r *MemoryRepository) WithinStaffTx(ctx context.Context, staffID uint, fn func(tx domain.Repository) error) error {
	if _, err := r.GetStaff(ctx, staffID); err != nil {
		return err
	}
	return fn(r)
}

func (r *MemoryRepository) filter(keep func(domain.Appointment) bool) []domain.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Appointment{}
	for _, ap := range r.appointments {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

var _ domain.Repository = (*MemoryRepository)(nil)
