package service

import (
	"context"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/pkg/auth"
)

// AppointmentService defines the interview lifecycle: validate, persist,
// then notify the candidate.
type AppointmentService interface {
	// List returns every appointment for recruiters and only their own for candidates.
	List(ctx context.Context, caller auth.Identity) ([]dto.AppointmentResponse, error)
	// Create schedules a new interview.
	Create(ctx context.Context, actor string, req dto.CreateAppointmentRequest) (dto.MutationResponse, error)
	// Update applies a partial change and re-validates the result.
	Update(ctx context.Context, actor, id string, req dto.UpdateAppointmentRequest) (dto.MutationResponse, error)
	// Delete cancels an interview.
	Delete(ctx context.Context, actor, id string) (dto.MutationResponse, error)
}
