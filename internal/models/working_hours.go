package models

import "time"

// One row per (business, weekday); updates replace the row for that day.
type WorkingHours struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"not null;uniqueIndex:idx_working_hours_business_day" json:"business_id"`
	Weekday    int  `gorm:"not null;uniqueIndex:idx_working_hours_business_day" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
