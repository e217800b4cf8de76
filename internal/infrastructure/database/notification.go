package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// HasSuccessful reports whether the occurrence was already delivered.
func (r *notificationRepository) HasSuccessful(ctx context.Context, eventType constant.EventType, recipient, occurrenceKey string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.NotificationRecord{}).
		Where("type = ? AND recipient = ? AND occurrence_key = ? AND success = ?", eventType, recipient, occurrenceKey, true).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("🔴 ERROR: failed to query notification log for %s/%s: %w", eventType, occurrenceKey, err)
	}
	return n > 0, nil
}

// Create appends a record.
func (r *notificationRepository) Create(ctx context.Context, rec *entity.NotificationRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to write notification record for %s: %w", rec.Recipient, err)
	}
	return nil
}

// List returns the newest records first, optionally filtered by recipient.
func (r *notificationRepository) List(ctx context.Context, recipient string, limit int) ([]*entity.NotificationRecord, error) {
	q := r.db.WithContext(ctx).Order("created_at desc").Order("id desc")
	if recipient != "" {
		q = q.Where("recipient = ?", entity.NormalizeEmail(recipient))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []*entity.NotificationRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to list notification records: %w", err)
	}
	return out, nil
}
