package repository

import (
	"time"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/models"
)

func BusinessToDomain(row models.Business) domain.Business {
	return domain.Business{
		ID:     row.ID,
		Name:   row.Name,
		Type:   domain.BusinessType(row.Type),
		Active: row.Active,
	}
}

func StaffToDomain(row models.Staff) domain.Staff {
	return domain.Staff{
		ID:         row.ID,
		PublicName: row.PublicName,
		BusinessID: row.BusinessID,
		UserID:     row.UserID,
		Active:     row.Active,
	}
}

func ServiceToDomain(row models.Service) domain.Service {
	return domain.Service{
		ID:              row.ID,
		Name:            row.Name,
		DurationMinutes: row.DurationMin,
		Price:           row.Price,
		BusinessID:      row.BusinessID,
		Active:          row.Active,
	}
}

func WorkingHoursToDomain(row models.WorkingHours) (domain.WorkingHours, error) {
	start, err := domain.ParseTimeOfDay(row.StartTime)
	if err != nil {
		return domain.WorkingHours{}, err
	}
	end, err := domain.ParseTimeOfDay(row.EndTime)
	if err != nil {
		return domain.WorkingHours{}, err
	}
	return domain.NewWorkingHours(row.BusinessID, time.Weekday(row.Weekday), start, end)
}

func AppointmentToDomain(row models.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:          row.ID,
		BusinessID:  row.BusinessID,
		StaffID:     row.StaffID,
		StaffUserID: row.StaffUserID,
		ServiceID:   row.ServiceID,
		ClientID:    row.ClientID,
		Start:       row.StartTime,
		End:         row.EndTime,
		Status:      domain.Status(row.Status),
		CanceledAt:  row.CanceledAt,
		CompletedAt: row.CompletedAt,
	}
}

func AppointmentFromDomain(ap domain.Appointment) models.Appointment {
	return models.Appointment{
		ID:          ap.ID,
		BusinessID:  ap.BusinessID,
		StaffID:     ap.StaffID,
		StaffUserID: ap.StaffUserID,
		ServiceID:   ap.ServiceID,
		ClientID:    ap.ClientID,
		StartTime:   ap.Start,
		EndTime:     ap.End,
		Status:      string(ap.Status),
		CanceledAt:  ap.CanceledAt,
		CompletedAt: ap.CompletedAt,
	}
}
