package service

import "context"

// SchedulerService runs the reminder sweep periodically in-process.
type SchedulerService interface {
	// Start registers the sweep job. An empty spec leaves it unscheduled.
	Start(ctx context.Context) error
	// Stop stops the underlying scheduler, waiting for a running sweep.
	Stop()
}
