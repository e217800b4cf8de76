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

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new instance of CandidateRepository.
func NewCandidateRepository(db *gorm.DB) repository.CandidateRepository {
	return &candidateRepository{db: db}
}

// FindByEmail retrieves a candidate by normalized email.
func (r *candidateRepository) FindByEmail(ctx context.Context, email string) (*entity.Candidate, error) {
	var c entity.Candidate
	if err := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate %s: %w", email, appErrors.ErrCandidateNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find candidate %s: %w", email, err)
	}
	return &c, nil
}

// FindByEmails retrieves the candidates matching any of the given emails.
func (r *candidateRepository) FindByEmails(ctx context.Context, emails []string) ([]*entity.Candidate, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	var out []*entity.Candidate
	if err := r.db.WithContext(ctx).Where("email IN ?", emails).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find %d candidates: %w", len(emails), err)
	}
	return out, nil
}

// FindAll retrieves every candidate ordered by email.
func (r *candidateRepository) FindAll(ctx context.Context) ([]*entity.Candidate, error) {
	var out []*entity.Candidate
	if err := r.db.WithContext(ctx).Order("email asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find all candidates: %w", err)
	}
	return out, nil
}

// Create stores a new candidate.
func (r *candidateRepository) Create(ctx context.Context, c *entity.Candidate) error {
	c.Email = entity.NormalizeEmail(c.Email)
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create candidate %s: %w", c.Email, err)
	}
	return nil
}

// Update overwrites an existing candidate.
func (r *candidateRepository) Update(ctx context.Context, c *entity.Candidate) error {
	// Save writes zero values, so doNotEmail=false is persisted
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update candidate %s: %w", c.Email, err)
	}
	return nil
}
