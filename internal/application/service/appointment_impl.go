package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	"interview-scheduler/internal/domain/scheduling"
	"interview-scheduler/internal/infrastructure/lock"
	"interview-scheduler/internal/pkg/auth"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

// lockWait bounds how long a change or a dispatch waits for its lock.
const lockWait = 5 * time.Second

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	candidateSvc    CandidateService
	policySvc       PolicyService
	notifier        NotificationService
	locker          lock.Locker
	audit           *auditor
	log             logger.Logger
}

// NewAppointmentService creates a new instance of AppointmentService implementation.
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	candidateSvc CandidateService,
	policySvc PolicyService,
	notifier NotificationService,
	locker lock.Locker,
	auditRepo repository.AuditRepository,
	log logger.Logger,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		candidateSvc:    candidateSvc,
		policySvc:       policySvc,
		notifier:        notifier,
		locker:          locker,
		audit:           newAuditor(auditRepo, log),
		log:             log,
	}
}

func (s *appointmentService) List(ctx context.Context, caller auth.Identity) ([]dto.AppointmentResponse, error) {
	var (
		appts []*entity.Appointment
		err   error
	)
	if caller.IsRecruiter() {
		appts, err = s.appointmentRepo.FindAll(ctx)
	} else {
		appts, err = s.appointmentRepo.FindByCandidate(ctx, caller.Email)
	}
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list appointments for %s", caller.Email), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	names := make(map[string]string)
	if len(appts) > 0 {
		if all, err := s.candidateSvc.List(ctx); err != nil {
			// names are cosmetic
			s.log.Warn(fmt.Sprintf("⚠️ WARN: listing without candidate names: %v", err))
		} else {
			for _, c := range all {
				names[c.Email] = c.Name
			}
		}
	}

	out := make([]dto.AppointmentResponse, len(appts))
	for i, a := range appts {
		out[i] = dto.ToAppointmentResponse(a, names[a.CandidateEmail])
	}
	return out, nil
}

// lockCandidate serialises conflict checks and writes for one candidate.
func (s *appointmentService) lockCandidate(ctx context.Context, email string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()
	unlock, err := s.locker.Lock(lockCtx, email)
	if err != nil {
		if errors.Is(err, appErrors.ErrCandidateBusy) {
			return nil, err
		}
		s.log.Error(fmt.Sprintf("Failed to lock candidate %s", email), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInternalServer, err)
	}
	return unlock, nil
}

// checkAndWrite validates req against the candidate's appointments and, when
// accepted, runs write while the candidate is still locked.
func (s *appointmentService) checkAndWrite(ctx context.Context, req scheduling.Request, policy *entity.SchedulingPolicy, write func(scheduling.Accepted) error) (scheduling.Accepted, error) {
	unlock, err := s.lockCandidate(ctx, req.CandidateEmail)
	if err != nil {
		return scheduling.Accepted{}, err
	}
	defer unlock()

	existing, err := s.appointmentRepo.FindByCandidate(ctx, req.CandidateEmail)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load appointments for %s", req.CandidateEmail), err)
		return scheduling.Accepted{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	accepted, err := scheduling.Validate(req, policy, existing)
	if err != nil {
		s.log.Info(fmt.Sprintf("Rejected schedule for %s at %q: %v", req.CandidateEmail, req.Start, err))
		return scheduling.Accepted{}, err
	}
	if err := write(accepted); err != nil {
		return scheduling.Accepted{}, err
	}
	return accepted, nil
}

// ensureCandidate records the candidate and returns it for the notification
// gates. Failures are logged; the appointment is already committed. ok is
// false when the candidate could not be read.
func (s *appointmentService) ensureCandidate(ctx context.Context, email, name, actor string) (*entity.Candidate, bool) {
	c, _, err := s.candidateSvc.EnsureCandidate(ctx, email, name, actor)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to ensure candidate %s", email), err)
		return nil, false
	}
	return c, true
}

func (s *appointmentService) Create(ctx context.Context, actor string, req dto.CreateAppointmentRequest) (dto.MutationResponse, error) {
	email := entity.NormalizeEmail(req.CandidateEmail)
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Start) == "" || email == "" {
		return dto.MutationResponse{}, appErrors.ErrMissingFields
	}

	policy := s.policySvc.LoadPolicy(ctx)
	appt := &entity.Appointment{
		ID:             uuid.NewString(),
		Title:          title,
		CandidateEmail: email,
		CreatedBy:      entity.NormalizeEmail(actor),
	}
	vreq := scheduling.Request{Start: req.Start, End: req.End, CandidateEmail: email}
	_, err := s.checkAndWrite(ctx, vreq, policy, func(acc scheduling.Accepted) error {
		appt.Start, appt.End = acc.Start, acc.End
		if err := s.appointmentRepo.Create(ctx, appt); err != nil {
			s.log.Error(fmt.Sprintf("Failed to create appointment for %s", email), err)
			return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		return nil
	})
	if err != nil {
		return dto.MutationResponse{}, err
	}
	s.log.Info(fmt.Sprintf("Created appointment %s for %s at %s", appt.ID, email, appt.Start.Format(time.RFC3339)))

	cand, ok := s.ensureCandidate(ctx, email, req.CandidateName, actor)
	s.audit.record(ctx, actor, constant.AuditCreated, "event", appt.ID, req)

	res := s.notifier.Dispatch(ctx, dto.DispatchRequest{
		Event:            constant.EventScheduled,
		Appointment:      appt,
		Policy:           policy,
		Candidate:        cand,
		CandidateUnknown: !ok,
	})
	return dto.NewMutationResponse(appt.ID, appt.End, res), nil
}

func (s *appointmentService) Update(ctx context.Context, actor, id string, req dto.UpdateAppointmentRequest) (dto.MutationResponse, error) {
	current, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, appErrors.ErrAppointmentNotFound) {
			return dto.MutationResponse{}, err
		}
		return dto.MutationResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	previous := *current

	next := *current
	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			next.Title = t
		}
	}
	if req.CandidateEmail != nil {
		if e := entity.NormalizeEmail(*req.CandidateEmail); e != "" {
			next.CandidateEmail = e
		}
	}

	vreq := scheduling.Request{
		Start:          current.Start.Format(time.RFC3339Nano),
		CandidateEmail: next.CandidateEmail,
		ExcludeID:      current.ID,
	}
	if req.Start != nil {
		vreq.Start = *req.Start
	}
	switch {
	case req.End != nil:
		vreq.End = *req.End
	case current.End != nil:
		vreq.End = current.End.Format(time.RFC3339Nano)
	}

	policy := s.policySvc.LoadPolicy(ctx)
	_, err = s.checkAndWrite(ctx, vreq, policy, func(acc scheduling.Accepted) error {
		next.Start, next.End = acc.Start, acc.End
		if err := s.appointmentRepo.Update(ctx, &next); err != nil {
			s.log.Error(fmt.Sprintf("Failed to update appointment %s", id), err)
			return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		return nil
	})
	if err != nil {
		return dto.MutationResponse{}, err
	}
	s.log.Info(fmt.Sprintf("Updated appointment %s, start %s -> %s", id, previous.Start.Format(time.RFC3339), next.Start.Format(time.RFC3339)))

	var name string
	if req.CandidateName != nil {
		name = *req.CandidateName
	}
	cand, ok := s.ensureCandidate(ctx, next.CandidateEmail, name, actor)
	s.audit.record(ctx, actor, constant.AuditUpdated, "event", id, req)

	res := s.notifier.Dispatch(ctx, dto.DispatchRequest{
		Event:            constant.EventRescheduled,
		Appointment:      &next,
		Previous:         &previous,
		Policy:           policy,
		Candidate:        cand,
		CandidateUnknown: !ok,
	})
	return dto.NewMutationResponse(id, next.End, res), nil
}

func (s *appointmentService) Delete(ctx context.Context, actor, id string) (dto.MutationResponse, error) {
	appt, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, appErrors.ErrAppointmentNotFound) {
			return dto.MutationResponse{}, err
		}
		return dto.MutationResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appErrors.ErrAppointmentNotFound) {
			return dto.MutationResponse{}, err
		}
		s.log.Error(fmt.Sprintf("Failed to delete appointment %s", id), err)
		return dto.MutationResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted appointment %s for %s", id, appt.CandidateEmail))
	s.audit.record(ctx, actor, constant.AuditDeleted, "event", id, dto.ToAppointmentResponse(appt, ""))

	cand, err := s.candidateSvc.Find(ctx, appt.CandidateEmail)
	if err != nil {
		s.log.Warn(fmt.Sprintf("⚠️ WARN: candidate lookup failed for %s: %v", appt.CandidateEmail, err))
	}
	res := s.notifier.Dispatch(ctx, dto.DispatchRequest{
		Event:            constant.EventCancelled,
		Appointment:      appt,
		Policy:           s.policySvc.LoadPolicy(ctx),
		Candidate:        cand,
		CandidateUnknown: err != nil,
	})
	return dto.NewMutationResponse(id, appt.End, res), nil
}
