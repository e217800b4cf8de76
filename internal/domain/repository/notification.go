package repository

import (
	"context"

	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
)

// NotificationRepository is the append-only notification log.
type NotificationRepository interface {
	// HasSuccessful reports whether a successful record exists for the occurrence.
	HasSuccessful(ctx context.Context, eventType constant.EventType, recipient, occurrenceKey string) (bool, error)
	// Create appends a record.
	Create(ctx context.Context, rec *entity.NotificationRecord) error
	// List returns the newest records first, optionally filtered by recipient.
	List(ctx context.Context, recipient string, limit int) ([]*entity.NotificationRecord, error)
}
