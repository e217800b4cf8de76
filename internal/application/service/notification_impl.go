package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	"interview-scheduler/internal/infrastructure/lock"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

const notificationListLimit = 500

type notificationService struct {
	notificationRepo repository.NotificationRepository
	mailer           Mailer
	alerter          Alerter // optional
	locker           lock.Locker
	sender           string
	timeout          time.Duration
	log              logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
// implementation. sender is the envelope address; timeout bounds each send.
// alerter may be nil. locker serialises dispatches of one occurrence.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	mailer Mailer,
	alerter Alerter,
	locker lock.Locker,
	sender string,
	timeout time.Duration,
	log logger.Logger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		mailer:           mailer,
		alerter:          alerter,
		locker:           locker,
		sender:           sender,
		timeout:          timeout,
		log:              log,
	}
}

// OccurrenceKey identifies one logical delivery of an event for an
// appointment. Each move of an appointment is its own rescheduled occurrence.
func OccurrenceKey(event constant.EventType, a *entity.Appointment) string {
	if event == constant.EventRescheduled {
		return a.ID + "@" + a.Start.UTC().Format(time.RFC3339)
	}
	return a.ID
}

type payloadSnapshot struct {
	AppointmentID string     `json:"appointmentId"`
	Title         string     `json:"title"`
	Start         time.Time  `json:"start"`
	End           *time.Time `json:"end,omitempty"`
	PreviousStart *time.Time `json:"previousStart,omitempty"`
	PreviousEnd   *time.Time `json:"previousEnd,omitempty"`
	From          string     `json:"from"`
	ReplyTo       string     `json:"replyTo,omitempty"`
}

func (s *notificationService) Dispatch(ctx context.Context, req dto.DispatchRequest) dto.DispatchResult {
	appt := req.Appointment
	res := dto.DispatchResult{Event: req.Event}
	if appt == nil {
		res.Outcome = constant.OutcomeFailed
		res.Detail = "no appointment"
		return res
	}
	res.OccurrenceKey = OccurrenceKey(req.Event, appt)
	to := entity.NormalizeEmail(appt.CandidateEmail)

	if !req.Policy.Enabled(req.Event) {
		return suppressed(res, constant.SkipDisabledBySettings)
	}
	if req.CandidateUnknown {
		s.log.Warn(fmt.Sprintf("⚠️ WARN: candidate %s could not be loaded, not sending %s", to, req.Event))
		return suppressed(res, constant.SkipCandidateUnknown)
	}
	if req.Candidate != nil && req.Candidate.DoNotEmail {
		return suppressed(res, constant.SkipCandidateMuted)
	}

	// check, send and record must not interleave with another dispatch of
	// the same occurrence
	lockCtx, cancelLock := context.WithTimeout(ctx, lockWait)
	unlock, err := s.locker.Lock(lockCtx, dispatchLockKey(req.Event, to, res.OccurrenceKey))
	cancelLock()
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to lock %s notification for %s", req.Event, to), err)
		res.Outcome = constant.OutcomeFailed
		res.Detail = err.Error()
		return res
	}
	defer unlock()

	done, err := s.notificationRepo.HasSuccessful(ctx, req.Event, to, res.OccurrenceKey)
	if err != nil {
		// without the log we cannot rule out a duplicate
		s.log.Error(fmt.Sprintf("Notification log unavailable, not sending %s to %s", req.Event, to), err)
		res.Outcome = constant.OutcomeFailed
		res.Detail = fmt.Sprintf("%v: %v", appErrors.ErrDatabaseOperation, err)
		return res
	}
	if done {
		return suppressed(res, constant.SkipAlreadySent)
	}

	msg, err := renderMessage(req, s.sender)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to render %s message for %s", req.Event, appt.ID), err)
		return s.fail(ctx, res, req, dto.EmailMessage{To: to}, err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err = s.mailer.Send(sendCtx, msg)
	cancel()
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to send %s notification to %s for appointment %s", req.Event, to, appt.ID), err)
		return s.fail(ctx, res, req, msg, err)
	}

	s.writeRecord(ctx, req, msg, res.OccurrenceKey, nil)
	s.log.Info(fmt.Sprintf("Sent %s notification to %s for appointment %s", req.Event, to, appt.ID))
	res.Outcome = constant.OutcomeSent
	return res
}

func dispatchLockKey(event constant.EventType, to, key string) string {
	return "notify|" + event.String() + "|" + to + "|" + key
}

func suppressed(res dto.DispatchResult, reason string) dto.DispatchResult {
	res.Outcome = constant.OutcomeSuppressed
	res.Reason = reason
	return res
}

func (s *notificationService) fail(ctx context.Context, res dto.DispatchResult, req dto.DispatchRequest, msg dto.EmailMessage, cause error) dto.DispatchResult {
	s.writeRecord(ctx, req, msg, res.OccurrenceKey, cause)
	res.Outcome = constant.OutcomeFailed
	res.Detail = cause.Error()
	if s.alerter != nil {
		text := fmt.Sprintf("Interview %s email to %s failed: %v", req.Event, msg.To, cause)
		if err := s.alerter.Alert(text); err != nil {
			s.log.Warn(fmt.Sprintf("⚠️ WARN: failed to push delivery alert: %v", err))
		}
	}
	return res
}

// writeRecord appends exactly one log entry for an attempt.
func (s *notificationService) writeRecord(ctx context.Context, req dto.DispatchRequest, msg dto.EmailMessage, key string, sendErr error) {
	a := req.Appointment
	snap := payloadSnapshot{
		AppointmentID: a.ID,
		Title:         a.Title,
		Start:         a.Start,
		End:           a.End,
		From:          msg.From,
		ReplyTo:       msg.ReplyTo,
	}
	if p := req.Previous; p != nil {
		snap.PreviousStart = &p.Start
		snap.PreviousEnd = p.End
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to encode payload of %s notification for %s", req.Event, a.ID), err)
	}

	rec := &entity.NotificationRecord{
		Recipient:     entity.NormalizeEmail(a.CandidateEmail),
		Type:          req.Event,
		OccurrenceKey: key,
		Subject:       msg.Subject,
		Success:       sendErr == nil,
		Payload:       string(payload),
	}
	if sendErr != nil {
		rec.Error = sendErr.Error()
	}
	// the send already happened; a cancelled request must not lose the record
	if err := s.notificationRepo.Create(context.WithoutCancel(ctx), rec); err != nil {
		s.log.Error(fmt.Sprintf("Failed to record %s notification for %s", req.Event, rec.Recipient), err)
	}
}

func (s *notificationService) ListRecords(ctx context.Context, recipient string) ([]dto.NotificationRecordResponse, error) {
	recs, err := s.notificationRepo.List(ctx, recipient, notificationListLimit)
	if err != nil {
		s.log.Error("Failed to list notification records", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToNotificationRecordResponseList(recs), nil
}
