package models

import "time"

type Staff struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	BusinessID uint   `gorm:"not null;index" json:"business_id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	PublicName string `gorm:"size:100;not null" json:"public_name"`
	Active     bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }
