package repository

import (
	"context"
	"time"

	"interview-scheduler/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment data operations.
type AppointmentRepository interface {
	// FindByID retrieves an appointment by its ID.
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	// FindByCandidate retrieves all appointments of one candidate ordered by start.
	FindByCandidate(ctx context.Context, email string) ([]*entity.Appointment, error)
	// FindStartingBetween retrieves appointments with from <= start <= to.
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Appointment, error)
	// FindAll retrieves every appointment ordered by start.
	FindAll(ctx context.Context) ([]*entity.Appointment, error)
	// Create stores a new appointment.
	Create(ctx context.Context, appt *entity.Appointment) error
	// Update overwrites an existing appointment.
	Update(ctx context.Context, appt *entity.Appointment) error
	// Delete deletes an appointment by its ID.
	Delete(ctx context.Context, id string) error
}
