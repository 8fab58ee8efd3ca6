package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID  uint `gorm:"not null;index" json:"business_id"`
	StaffID     uint `gorm:"not null;index" json:"staff_id"`
	StaffUserID uint `gorm:"not null" json:"staff_user_id"`
	ServiceID   uint `gorm:"not null;index" json:"service_id"`
	ClientID    uint `gorm:"not null;index" json:"client_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled';index" json:"status"`

	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
