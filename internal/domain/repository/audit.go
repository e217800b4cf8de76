package repository

import (
	"context"

	"interview-scheduler/internal/domain/entity"
)

// AuditRepository appends audit entries.
type AuditRepository interface {
	Create(ctx context.Context, e *entity.AuditEntry) error
}
