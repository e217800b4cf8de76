package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new instance of AuditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, e *entity.AuditEntry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to write audit entry %s %s: %w", e.Action, e.EntityID, err)
	}
	return nil
}
