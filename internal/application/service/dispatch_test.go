package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/application/service"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
)

func TestConcurrentDispatchSendsOnce(t *testing.T) {
	h := setup(t)
	h.mailer.delay = 50 * time.Millisecond
	start, _ := time.Parse(time.RFC3339, monday("11:00"))
	p := entity.DefaultPolicy()
	p.NotifyReminders = true
	req := dto.DispatchRequest{
		Event:       constant.EventReminder,
		Appointment: &entity.Appointment{ID: "a1", Title: "Intro", Start: start, CandidateEmail: "c@x.com"},
		Policy:      p,
	}

	results := make([]dto.DispatchResult, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.notifier.Dispatch(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var sent, already int
	for _, r := range results {
		switch {
		case r.Outcome == constant.OutcomeSent:
			sent++
		case r.Outcome == constant.OutcomeSuppressed && r.Reason == constant.SkipAlreadySent:
			already++
		default:
			t.Errorf("unexpected result %+v", r)
		}
	}
	if sent != 1 || already != 1 {
		t.Errorf("sent = %d, already sent = %d, want 1 and 1", sent, already)
	}
	if got := h.mailer.count(); got != 1 {
		t.Errorf("mailer called %d times, want 1", got)
	}
	recs := h.records(t)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	var snap struct {
		AppointmentID string `json:"appointmentId"`
	}
	if err := json.Unmarshal([]byte(recs[0].Payload), &snap); err != nil || snap.AppointmentID != "a1" {
		t.Errorf("payload = %q, %v", recs[0].Payload, err)
	}
}

// unreadableCandidates fails every candidate read.
type unreadableCandidates struct {
	service.CandidateService
}

var errCandidateStore = errors.New("database is locked")

func (unreadableCandidates) EnsureCandidate(context.Context, string, string, string) (*entity.Candidate, dto.EnsureResult, error) {
	return nil, "", errCandidateStore
}

func (unreadableCandidates) Find(context.Context, string) (*entity.Candidate, error) {
	return nil, errCandidateStore
}

func TestUnreadableCandidateIsNotEmailed(t *testing.T) {
	h := setup(t)
	ctx := context.Background()
	if _, err := h.cands.Upsert(ctx, recruiter, dto.UpsertCandidateRequest{Email: "mute@x.com", DoNotEmail: ptr(true)}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	svc := service.NewAppointmentService(h.appts, unreadableCandidates{h.cands}, h.policy, h.notifier, h.locker, h.audit, h.log)

	check := func(step string, res dto.MutationResponse) {
		t.Helper()
		if !res.OK || res.EmailSent || res.SkipReason != constant.SkipCandidateUnknown {
			t.Errorf("%s = %+v", step, res)
		}
	}

	created, err := svc.Create(ctx, recruiter, dto.CreateAppointmentRequest{
		Title: "Intro", Start: monday("11:00"), CandidateEmail: "mute@x.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	check("create", created)

	updated, err := svc.Update(ctx, recruiter, created.ID, dto.UpdateAppointmentRequest{Start: ptr(monday("14:00"))})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	check("update", updated)

	deleted, err := svc.Delete(ctx, recruiter, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	check("delete", deleted)

	if got := h.mailer.count(); got != 0 {
		t.Errorf("mailer called %d times, want 0", got)
	}
	if got := len(h.records(t)); got != 0 {
		t.Errorf("records = %d, want 0", got)
	}
}

func TestSweepMatchesCandidateByNormalisedEmail(t *testing.T) {
	h := setup(t)
	ctx := context.Background()
	now, _ := time.Parse(time.RFC3339, monday("10:00"))

	if _, err := h.cands.Upsert(ctx, recruiter, dto.UpsertCandidateRequest{Email: "mute@x.com", DoNotEmail: ptr(true)}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// written directly, bypassing the repository's normalisation
	legacy := &entity.Appointment{
		ID:             uuid.NewString(),
		Title:          "Intro",
		Start:          now.Add(30 * time.Minute).UTC(),
		CandidateEmail: " Mute@X.com ",
	}
	if err := h.db.Create(legacy).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	p := entity.DefaultPolicy()
	p.NotifyReminders = true
	res, err := h.reminder.SweepReminders(ctx, now, p)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res.Due != 1 || res.Suppressed != 1 || res.Sent != 0 {
		t.Errorf("sweep = %+v", res)
	}
	if got := h.mailer.count(); got != 0 {
		t.Errorf("mailer called %d times, want 0", got)
	}
}
