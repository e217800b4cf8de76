package repository

import (
	"context"

	"interview-scheduler/internal/domain/entity"
)

// CandidateRepository defines the interface for candidate data operations.
type CandidateRepository interface {
	// FindByEmail retrieves a candidate by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Candidate, error)
	// FindByEmails retrieves the candidates matching any of the given emails.
	FindByEmails(ctx context.Context, emails []string) ([]*entity.Candidate, error)
	// FindAll retrieves every candidate ordered by email.
	FindAll(ctx context.Context) ([]*entity.Candidate, error)
	// Create stores a new candidate.
	Create(ctx context.Context, c *entity.Candidate) error
	// Update overwrites an existing candidate.
	Update(ctx context.Context, c *entity.Candidate) error
}
