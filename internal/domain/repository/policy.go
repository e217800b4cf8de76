package repository

import (
	"context"

	"interview-scheduler/internal/domain/entity"
)

// PolicyRepository stores the singleton scheduling policy.
type PolicyRepository interface {
	// Get returns the stored policy or apperrors.ErrPolicyNotFound.
	Get(ctx context.Context) (*entity.SchedulingPolicy, error)
	// Save creates or overwrites the policy.
	Save(ctx context.Context, p *entity.SchedulingPolicy) error
}
