package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/Math-l7/scheduling-modular-api/internal/models"
)

// GormStore writes events to the audit_logs table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Log(ctx context.Context, ev Event) error {
	metaJSON := "{}"
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		BusinessID: ev.BusinessID,
		UserID:     ev.UserID,
		Action:     ev.Action,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
		Metadata:   metaJSON,
	}

	return s.db.WithContext(ctx).Create(&row).Error
}
