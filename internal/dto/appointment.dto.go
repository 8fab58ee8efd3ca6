package dto

import (
	"time"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
)

type AppointmentDTO struct {
	ID          uint       `json:"id"`
	BusinessID  uint       `json:"business_id"`
	StaffID     uint       `json:"staff_id"`
	ServiceID   uint       `json:"service_id"`
	ClientID    uint       `json:"client_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromAppointment(ap domain.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          ap.ID,
		BusinessID:  ap.BusinessID,
		StaffID:     ap.StaffID,
		ServiceID:   ap.ServiceID,
		ClientID:    ap.ClientID,
		StartTime:   ap.Start,
		EndTime:     ap.End,
		Status:      string(ap.Status),
		CanceledAt:  ap.CanceledAt,
		CompletedAt: ap.CompletedAt,
	}
}

func FromAppointments(aps []domain.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
