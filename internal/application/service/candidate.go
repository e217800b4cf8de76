package service

import (
	"context"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/entity"
)

// CandidateService defines the interface for candidate records.
type CandidateService interface {
	// EnsureCandidate creates the candidate on first reference. An existing
	// record only has its name replaced, and only by a non-empty name.
	EnsureCandidate(ctx context.Context, email, name, createdBy string) (*entity.Candidate, dto.EnsureResult, error)
	// Upsert creates or edits a candidate from the recruiter UI.
	Upsert(ctx context.Context, actor string, req dto.UpsertCandidateRequest) (*entity.Candidate, error)
	// Get returns a candidate with their interviews and email history.
	Get(ctx context.Context, email string) (*dto.CandidateDetail, error)
	// List returns every candidate.
	List(ctx context.Context) ([]dto.CandidateResponse, error)
	// Find returns the candidate or nil when there is none.
	Find(ctx context.Context, email string) (*entity.Candidate, error)
}
