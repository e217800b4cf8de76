package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

// candidateDetailLogLimit caps the email history shown with a candidate.
const candidateDetailLogLimit = 100

type candidateService struct {
	candidateRepo    repository.CandidateRepository
	appointmentRepo  repository.AppointmentRepository
	notificationRepo repository.NotificationRepository
	audit            *auditor
	log              logger.Logger
}

// NewCandidateService creates a new instance of CandidateService implementation.
func NewCandidateService(
	candidateRepo repository.CandidateRepository,
	appointmentRepo repository.AppointmentRepository,
	notificationRepo repository.NotificationRepository,
	auditRepo repository.AuditRepository,
	log logger.Logger,
) CandidateService {
	return &candidateService{
		candidateRepo:    candidateRepo,
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		audit:            newAuditor(auditRepo, log),
		log:              log,
	}
}

func (s *candidateService) Find(ctx context.Context, email string) (*entity.Candidate, error) {
	c, err := s.candidateRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, appErrors.ErrCandidateNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return c, nil
}

func (s *candidateService) EnsureCandidate(ctx context.Context, email, name, createdBy string) (*entity.Candidate, dto.EnsureResult, error) {
	email = entity.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, "", appErrors.ErrInvalidEmail
	}

	existing, err := s.Find(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing == nil {
		c := &entity.Candidate{
			Email:     email,
			Name:      name,
			Status:    constant.CandidateActive,
			CreatedBy: entity.NormalizeEmail(createdBy),
		}
		if err := s.candidateRepo.Create(ctx, c); err != nil {
			s.log.Error(fmt.Sprintf("Failed to create candidate %s", email), err)
			return nil, "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		s.log.Info(fmt.Sprintf("Created candidate %s", email))
		return c, dto.CandidateInserted, nil
	}

	if name != "" && name != existing.Name {
		existing.Name = name
		if err := s.candidateRepo.Update(ctx, existing); err != nil {
			s.log.Error(fmt.Sprintf("Failed to update candidate name for %s", email), err)
			return nil, "", fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
	}
	return existing, dto.CandidatePatched, nil
}

func (s *candidateService) Upsert(ctx context.Context, actor string, req dto.UpsertCandidateRequest) (*entity.Candidate, error) {
	if req.Status != nil && *req.Status != constant.CandidateActive && *req.Status != constant.CandidateInactive {
		return nil, fmt.Errorf("%w: unknown status %q", appErrors.ErrInvalidInput, *req.Status)
	}
	c, _, err := s.EnsureCandidate(ctx, req.Email, "", actor)
	if err != nil {
		return nil, err
	}

	// the candidate form sets fields verbatim, including an empty name
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.DoNotEmail != nil {
		c.DoNotEmail = *req.DoNotEmail
	}
	if err := s.candidateRepo.Update(ctx, c); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update candidate %s", c.Email), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Candidate %s updated by %s", c.Email, actor))
	s.audit.record(ctx, actor, constant.AuditCandidateUpdated, "candidate", c.Email, req)
	return c, nil
}

func (s *candidateService) Get(ctx context.Context, email string) (*dto.CandidateDetail, error) {
	c, err := s.Find(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, appErrors.ErrCandidateNotFound
	}
	appts, err := s.appointmentRepo.FindByCandidate(ctx, c.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	recs, err := s.notificationRepo.List(ctx, c.Email, candidateDetailLogLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	detail := &dto.CandidateDetail{
		Candidate:     dto.ToCandidateResponse(c),
		Appointments:  make([]dto.AppointmentResponse, len(appts)),
		Notifications: dto.ToNotificationRecordResponseList(recs),
	}
	for i, a := range appts {
		detail.Appointments[i] = dto.ToAppointmentResponse(a, c.Name)
	}
	return detail, nil
}

func (s *candidateService) List(ctx context.Context) ([]dto.CandidateResponse, error) {
	cs, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list candidates", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToCandidateResponseList(cs), nil
}
