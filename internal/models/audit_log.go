package models

import "time"

// AuditLog is one row of a business's audit trail. Rows are append-only.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint  `gorm:"not null;index:idx_audit_business_created,priority:1" json:"business_id"`
	UserID     *uint `json:"user_id,omitempty"`

	// appointment_created, appointment_canceled, appointment_completed or
	// appointment_conflict.
	Action   string `gorm:"size:50;not null;index" json:"action"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	Metadata string `gorm:"type:jsonb;default:'{}'" json:"metadata"`

	CreatedAt time.Time `gorm:"index:idx_audit_business_created,priority:2,sort:desc" json:"created_at"`
}
