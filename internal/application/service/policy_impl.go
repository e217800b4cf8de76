package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	"interview-scheduler/internal/domain/scheduling"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

type policyService struct {
	policyRepo repository.PolicyRepository
	audit      *auditor
	log        logger.Logger
}

// NewPolicyService creates a new instance of PolicyService implementation.
func NewPolicyService(policyRepo repository.PolicyRepository, auditRepo repository.AuditRepository, log logger.Logger) PolicyService {
	return &policyService{
		policyRepo: policyRepo,
		audit:      newAuditor(auditRepo, log),
		log:        log,
	}
}

// GetPolicy returns the stored policy, creating it with defaults when absent.
func (s *policyService) GetPolicy(ctx context.Context) (*entity.SchedulingPolicy, error) {
	p, err := s.policyRepo.Get(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, appErrors.ErrPolicyNotFound) {
		s.log.Error("Failed to load scheduling policy", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	p = entity.DefaultPolicy()
	if err := s.policyRepo.Save(ctx, p); err != nil {
		s.log.Error("Failed to store default scheduling policy", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info("Initialized scheduling policy with defaults")
	return p, nil
}

// LoadPolicy returns the stored policy or nil.
func (s *policyService) LoadPolicy(ctx context.Context) *entity.SchedulingPolicy {
	p, err := s.policyRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, appErrors.ErrPolicyNotFound) {
			s.log.Error("Failed to load scheduling policy, continuing without one", err)
		}
		return nil
	}
	return p
}

// UpdatePolicy applies a whitelisted update and returns the stored result.
func (s *policyService) UpdatePolicy(ctx context.Context, actor string, req dto.UpdatePolicyRequest) (*entity.SchedulingPolicy, error) {
	p, err := s.GetPolicy(ctx)
	if err != nil {
		return nil, err
	}
	if err := applyPolicyUpdate(p, req); err != nil {
		return nil, err
	}
	s.warnIfUnusable(p)

	if err := s.policyRepo.Save(ctx, p); err != nil {
		s.log.Error("Failed to save scheduling policy", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Scheduling policy updated by %s", actor))
	s.audit.record(ctx, actor, constant.AuditPolicyUpdated, "settings", fmt.Sprint(p.ID), req)
	return p, nil
}

// SeedFromFile stores the YAML policy at path unless a policy already exists.
func (s *policyService) SeedFromFile(ctx context.Context, path string) (bool, error) {
	if _, err := s.policyRepo.Get(ctx); err == nil {
		s.log.Debug("Scheduling policy already present, skipping seed file")
		return false, nil
	} else if !errors.Is(err, appErrors.ErrPolicyNotFound) {
		return false, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read policy seed %s: %w", path, err)
	}
	var req dto.UpdatePolicyRequest
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return false, fmt.Errorf("%w: parse %s: %v", appErrors.ErrInvalidPolicy, path, err)
	}

	p := entity.DefaultPolicy()
	if err := applyPolicyUpdate(p, req); err != nil {
		return false, err
	}
	s.warnIfUnusable(p)
	if err := s.policyRepo.Save(ctx, p); err != nil {
		return false, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Seeded scheduling policy from %s", path))
	return true, nil
}

func (s *policyService) warnIfUnusable(p *entity.SchedulingPolicy) {
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		s.log.Warn(fmt.Sprintf("⚠️ WARN: timezone %q cannot be loaded, every proposed start will be rejected", p.Timezone))
	}
	if p.WorkEndMinute < p.WorkStartMinute {
		s.log.Warn(fmt.Sprintf("⚠️ WARN: work window %s-%s is inverted and matches no time of day",
			scheduling.FormatClock(p.WorkStartMinute), scheduling.FormatClock(p.WorkEndMinute)))
	}
}

// applyPolicyUpdate copies the whitelisted fields of req onto p. A present
// notifications block replaces every toggle; its missing reminder lead time
// falls back to the default.
func applyPolicyUpdate(p *entity.SchedulingPolicy, req dto.UpdatePolicyRequest) error {
	if req.Timezone != nil {
		p.Timezone = *req.Timezone
	}
	if req.WorkDays != nil {
		for _, d := range req.WorkDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: work day %d out of range 0-6", appErrors.ErrInvalidPolicy, d)
			}
		}
		p.WorkDays = append([]int(nil), req.WorkDays...)
	}
	if req.WorkStart != nil {
		m, err := scheduling.ParseClock(*req.WorkStart)
		if err != nil {
			return fmt.Errorf("%w: workStart: %v", appErrors.ErrInvalidPolicy, err)
		}
		p.WorkStartMinute = m
	}
	if req.WorkEnd != nil {
		m, err := scheduling.ParseClock(*req.WorkEnd)
		if err != nil {
			return fmt.Errorf("%w: workEnd: %v", appErrors.ErrInvalidPolicy, err)
		}
		p.WorkEndMinute = m
	}
	if req.DefaultDurationMinutes != nil {
		if *req.DefaultDurationMinutes < 0 {
			return fmt.Errorf("%w: defaultDurationMinutes must not be negative", appErrors.ErrInvalidPolicy)
		}
		p.DefaultDurationMinutes = *req.DefaultDurationMinutes
	}
	if req.BufferMinutes != nil {
		if *req.BufferMinutes < 0 {
			return fmt.Errorf("%w: bufferMinutes must not be negative", appErrors.ErrInvalidPolicy)
		}
		p.BufferMinutes = *req.BufferMinutes
	}
	if req.EmailFromName != nil {
		p.EmailFromName = *req.EmailFromName
	}
	if req.EmailReplyTo != nil {
		p.EmailReplyTo = *req.EmailReplyTo
	}
	if n := req.Notifications; n != nil {
		p.NotifyScheduled = n.Scheduled
		p.NotifyRescheduled = n.Rescheduled
		p.NotifyCancelled = n.Cancelled
		p.NotifyReminders = n.Reminders
		p.ReminderMinutes = entity.DefaultReminderMinutes
		if n.ReminderMinutes != nil {
			p.ReminderMinutes = *n.ReminderMinutes
		}
	}
	return nil
}
