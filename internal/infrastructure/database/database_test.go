package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
	appErrors "interview-scheduler/internal/pkg/errors"
	"interview-scheduler/internal/pkg/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared", logger.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestAppointmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(newTestDB(t))

	ist := time.FixedZone("IST", 5*3600+1800)
	base := time.Date(2026, 10, 19, 10, 0, 0, 0, ist)
	end := base.Add(30 * time.Minute)

	a := &entity.Appointment{ID: uuid.NewString(), Title: "Intro", Start: base, End: &end, CandidateEmail: " C@X.com "}
	b := &entity.Appointment{ID: uuid.NewString(), Title: "Tech", Start: base.Add(3 * time.Hour), CandidateEmail: "c@x.com"}
	other := &entity.Appointment{ID: uuid.NewString(), Title: "Other", Start: base.Add(time.Hour), CandidateEmail: "o@x.com"}
	for _, x := range []*entity.Appointment{b, a, other} {
		if err := repo.Create(ctx, x); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.FindByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.Start.Equal(base) || got.End == nil || !got.End.Equal(end) || got.CandidateEmail != "c@x.com" {
		t.Errorf("round trip = %+v", got)
	}

	mine, err := repo.FindByCandidate(ctx, "C@x.com")
	if err != nil {
		t.Fatalf("find by candidate: %v", err)
	}
	if len(mine) != 2 || mine[0].ID != a.ID || mine[1].ID != b.ID {
		t.Errorf("FindByCandidate returned %d items in wrong order", len(mine))
	}

	// window bounds are inclusive
	due, err := repo.FindStartingBetween(ctx, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("find between: %v", err)
	}
	if len(due) != 2 {
		t.Errorf("FindStartingBetween = %d, want 2", len(due))
	}

	newStart := base.Add(24 * time.Hour)
	got.Start = newStart
	got.End = nil
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.FindByID(ctx, a.ID)
	if !got.Start.Equal(newStart) || got.End != nil {
		t.Errorf("after update = %+v", got)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, a.ID); !errors.Is(err, appErrors.ErrAppointmentNotFound) {
		t.Errorf("FindByID after delete err = %v", err)
	}
	if err := repo.Delete(ctx, a.ID); !errors.Is(err, appErrors.ErrAppointmentNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(newTestDB(t))

	recs := []*entity.NotificationRecord{
		{Recipient: "c@x.com", Type: constant.EventScheduled, OccurrenceKey: "a1", Success: false, Error: "timeout"},
		{Recipient: "c@x.com", Type: constant.EventReminder, OccurrenceKey: "a1", Success: true},
		{Recipient: "o@x.com", Type: constant.EventScheduled, OccurrenceKey: "a2", Success: true},
	}
	for _, r := range recs {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tests := []struct {
		name  string
		event constant.EventType
		to    string
		key   string
		want  bool
	}{
		{"failed attempt does not count", constant.EventScheduled, "c@x.com", "a1", false},
		{"successful reminder", constant.EventReminder, "c@x.com", "a1", true},
		{"different recipient", constant.EventReminder, "o@x.com", "a1", false},
		{"different key", constant.EventReminder, "c@x.com", "a2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasSuccessful(ctx, tt.event, tt.to, tt.key)
			if err != nil {
				t.Fatalf("HasSuccessful: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasSuccessful = %v, want %v", got, tt.want)
			}
		})
	}

	all, err := repo.List(ctx, "", 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("List all = %d, %v", len(all), err)
	}
	mine, err := repo.List(ctx, "C@X.com", 10)
	if err != nil || len(mine) != 2 {
		t.Fatalf("List filtered = %d, %v", len(mine), err)
	}
	if mine[0].ID < mine[1].ID {
		t.Errorf("List should return newest first")
	}
}

func TestPolicyRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPolicyRepository(newTestDB(t))

	if _, err := repo.Get(ctx); !errors.Is(err, appErrors.ErrPolicyNotFound) {
		t.Fatalf("Get on empty store err = %v", err)
	}

	p := entity.DefaultPolicy()
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	p.WorkDays = []int{0, 6}
	p.NotifyScheduled = false
	p.BufferMinutes = 15
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.WorkDays) != 2 || got.WorkDays[0] != 0 || got.WorkDays[1] != 6 {
		t.Errorf("WorkDays = %v", got.WorkDays)
	}
	if got.NotifyScheduled || got.BufferMinutes != 15 || !got.NotifyCancelled {
		t.Errorf("policy = %+v", got)
	}
}

func TestCandidateRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCandidateRepository(newTestDB(t))

	c := &entity.Candidate{Email: "Ann@X.com", Name: "Ann", Status: constant.CandidateActive, DoNotEmail: true}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	c.DoNotEmail = false
	if err := repo.Update(ctx, c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.FindByEmail(ctx, "ann@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.DoNotEmail || got.Name != "Ann" {
		t.Errorf("candidate = %+v", got)
	}
	if _, err := repo.FindByEmail(ctx, "nobody@x.com"); !errors.Is(err, appErrors.ErrCandidateNotFound) {
		t.Errorf("missing candidate err = %v", err)
	}
	found, err := repo.FindByEmails(ctx, []string{"ann@x.com", "nobody@x.com"})
	if err != nil || len(found) != 1 {
		t.Errorf("FindByEmails = %d, %v", len(found), err)
	}
}
