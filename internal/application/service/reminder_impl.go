package service

import (
	"context"
	"fmt"
	"time"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

type reminderService struct {
	appointmentRepo repository.AppointmentRepository
	candidateRepo   repository.CandidateRepository
	policySvc       PolicyService
	notifier        NotificationService
	now             func() time.Time
	log             logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	appointmentRepo repository.AppointmentRepository,
	candidateRepo repository.CandidateRepository,
	policySvc PolicyService,
	notifier NotificationService,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		appointmentRepo: appointmentRepo,
		candidateRepo:   candidateRepo,
		policySvc:       policySvc,
		notifier:        notifier,
		now:             time.Now,
		log:             log,
	}
}

func (s *reminderService) RunSweep(ctx context.Context) (dto.SweepResult, error) {
	return s.SweepReminders(ctx, s.now(), s.policySvc.LoadPolicy(ctx))
}

func (s *reminderService) SweepReminders(ctx context.Context, now time.Time, policy *entity.SchedulingPolicy) (dto.SweepResult, error) {
	res := dto.SweepResult{WindowStart: now, WindowEnd: now}
	if !policy.Enabled(constant.EventReminder) || policy.ReminderMinutes <= 0 {
		res.Disabled = true
		s.log.Debug("Reminders disabled, sweep skipped")
		return res, nil
	}
	res.WindowEnd = now.Add(time.Duration(policy.ReminderMinutes) * time.Minute)

	appts, err := s.appointmentRepo.FindStartingBetween(ctx, res.WindowStart, res.WindowEnd)
	if err != nil {
		s.log.Error("Failed to load appointments for reminder sweep", err)
		return res, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	res.Due = len(appts)
	if len(appts) == 0 {
		return res, nil
	}

	candidates, err := s.candidatesByEmail(ctx, appts)
	if err != nil {
		// muted candidates cannot be told apart without this
		return res, err
	}

	for _, a := range appts {
		if err := ctx.Err(); err != nil {
			s.log.Warn(fmt.Sprintf("⚠️ WARN: reminder sweep interrupted after %d of %d", res.Sent+res.Suppressed+res.AlreadySent+res.Failed, len(appts)))
			return res, err
		}
		r := s.notifier.Dispatch(ctx, dto.DispatchRequest{
			Event:       constant.EventReminder,
			Appointment: a,
			Policy:      policy,
			Candidate:   candidates[entity.NormalizeEmail(a.CandidateEmail)],
		})
		switch {
		case r.Outcome == constant.OutcomeSent:
			res.Sent++
		case r.Outcome == constant.OutcomeFailed:
			res.Failed++
		case r.Reason == constant.SkipAlreadySent:
			res.AlreadySent++
		default:
			res.Suppressed++
		}
	}

	s.log.Info(fmt.Sprintf("Reminder sweep %s..%s: due %d, sent %d, suppressed %d, already sent %d, failed %d",
		res.WindowStart.Format(time.RFC3339), res.WindowEnd.Format(time.RFC3339),
		res.Due, res.Sent, res.Suppressed, res.AlreadySent, res.Failed))
	return res, nil
}

func (s *reminderService) candidatesByEmail(ctx context.Context, appts []*entity.Appointment) (map[string]*entity.Candidate, error) {
	seen := make(map[string]struct{}, len(appts))
	emails := make([]string, 0, len(appts))
	for _, a := range appts {
		e := entity.NormalizeEmail(a.CandidateEmail)
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			emails = append(emails, e)
		}
	}
	cs, err := s.candidateRepo.FindByEmails(ctx, emails)
	if err != nil {
		s.log.Error("Failed to load candidates for reminder sweep", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	out := make(map[string]*entity.Candidate, len(cs))
	for _, c := range cs {
		out[entity.NormalizeEmail(c.Email)] = c
	}
	return out, nil
}
