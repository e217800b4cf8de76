package service

import (
	"context"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/entity"
)

// PolicyService defines the Settings Provider: access to the single active
// scheduling policy.
type PolicyService interface {
	// GetPolicy returns the stored policy, creating it with defaults when absent.
	GetPolicy(ctx context.Context) (*entity.SchedulingPolicy, error)
	// LoadPolicy returns the stored policy for use by the engines. A missing
	// policy or a read failure yields nil, which the engines treat permissively.
	LoadPolicy(ctx context.Context) *entity.SchedulingPolicy
	// UpdatePolicy applies a whitelisted update and returns the stored result.
	UpdatePolicy(ctx context.Context, actor string, req dto.UpdatePolicyRequest) (*entity.SchedulingPolicy, error)
	// SeedFromFile stores the YAML policy at path unless a policy already exists.
	SeedFromFile(ctx context.Context, path string) (bool, error)
}
