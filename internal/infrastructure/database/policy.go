package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	appErrors "interview-scheduler/internal/pkg/errors"
)

type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new instance of PolicyRepository.
func NewPolicyRepository(db *gorm.DB) repository.PolicyRepository {
	return &policyRepository{db: db}
}

// Get returns the singleton policy.
func (r *policyRepository) Get(ctx context.Context) (*entity.SchedulingPolicy, error) {
	var p entity.SchedulingPolicy
	if err := r.db.WithContext(ctx).Where("id = ?", entity.PolicyID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to load scheduling policy: %w", err)
	}
	return &p, nil
}

// Save creates or overwrites the singleton policy.
func (r *policyRepository) Save(ctx context.Context, p *entity.SchedulingPolicy) error {
	p.ID = entity.PolicyID
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to save scheduling policy: %w", err)
	}
	return nil
}
