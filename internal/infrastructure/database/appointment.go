package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	appErrors "interview-scheduler/internal/pkg/errors"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Instants are stored in UTC so range predicates compare consistently.
func toUTC(a *entity.Appointment) {
	a.Start = a.Start.UTC()
	if a.End != nil {
		e := a.End.UTC()
		a.End = &e
	}
	a.CandidateEmail = entity.NormalizeEmail(a.CandidateEmail)
}

// FindByID retrieves an appointment by its ID.
func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var a entity.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appointment %s: %w", id, appErrors.ErrAppointmentNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find appointment %s: %w", id, err)
	}
	return &a, nil
}

// FindByCandidate retrieves all appointments of one candidate ordered by start.
func (r *appointmentRepository) FindByCandidate(ctx context.Context, email string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := r.db.WithContext(ctx).
		Where("candidate_email = ?", entity.NormalizeEmail(email)).
		Order("start_at asc").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find appointments for %s: %w", email, err)
	}
	return appts, nil
}

// FindStartingBetween retrieves appointments with from <= start <= to.
func (r *appointmentRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := r.db.WithContext(ctx).
		Where("start_at >= ? AND start_at <= ?", from.UTC(), to.UTC()).
		Order("start_at asc").
		Find(&appts).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find appointments between %v and %v: %w", from, to, err)
	}
	return appts, nil
}

// FindAll retrieves every appointment ordered by start.
func (r *appointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	if err := r.db.WithContext(ctx).Order("start_at asc").Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find all appointments: %w", err)
	}
	return appts, nil
}

// Create stores a new appointment.
func (r *appointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	toUTC(a)
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create appointment for %s: %w", a.CandidateEmail, err)
	}
	return nil
}

// Update overwrites an existing appointment.
func (r *appointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	toUTC(a)
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update appointment %s: %w", a.ID, err)
	}
	return nil
}

// Delete deletes an appointment by its ID.
func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	if res.Error != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete appointment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("appointment %s: %w", id, appErrors.ErrAppointmentNotFound)
	}
	return nil
}
