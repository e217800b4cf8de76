package service

import (
	"context"
	"time"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/entity"
)

// ReminderService defines the Reminder Sweeper.
type ReminderService interface {
	// SweepReminders sends a reminder for every appointment starting within
	// [now, now+reminderMinutes]. Repeated sweeps never resend.
	SweepReminders(ctx context.Context, now time.Time, policy *entity.SchedulingPolicy) (dto.SweepResult, error)
	// RunSweep loads the current policy and sweeps from the current time.
	RunSweep(ctx context.Context) (dto.SweepResult, error)
}
