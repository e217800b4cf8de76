package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"interview-scheduler/internal/infrastructure/scheduler"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

// sweepTimeout bounds one scheduled sweep.
const sweepTimeout = 5 * time.Minute

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	reminderSvc   ReminderService
	spec          string
	entryID       cron.EntryID
	log           logger.Logger
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(cronScheduler *scheduler.Scheduler, reminderSvc ReminderService, spec string, log logger.Logger) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		reminderSvc:   reminderSvc,
		spec:          spec,
		log:           log,
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	if s.spec == "" {
		s.log.Info("REMINDER_SWEEP_SPEC is empty, in-process reminder sweep disabled")
		return nil
	}
	id, err := s.cronScheduler.AddJob(s.spec, s.runSweep)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.entryID = id
	s.log.Info(fmt.Sprintf("Scheduled reminder sweep (Job ID: %d, spec: %s)", id, s.spec))
	return nil
}

func (s *schedulerService) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	s.log.Debug("Executing scheduled reminder sweep")
	res, err := s.reminderSvc.RunSweep(ctx)
	if err != nil {
		s.log.Error("Scheduled reminder sweep failed", err)
		return
	}
	if res.Failed > 0 {
		s.log.Warn(fmt.Sprintf("⚠️ WARN: reminder sweep finished with %d failed deliveries", res.Failed))
	}
}

func (s *schedulerService) Stop() {
	if s.entryID != 0 {
		s.cronScheduler.RemoveJob(s.entryID)
	}
	s.cronScheduler.Stop()
}
