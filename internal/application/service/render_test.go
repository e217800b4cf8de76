package service

import (
	"strings"
	"testing"
	"time"

	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
)

func TestRenderMessage(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 10, 19, 5, 30, 0, 0, time.UTC) // 11:00 IST
	end := start.Add(30 * time.Minute)
	appt := &entity.Appointment{ID: "a1", Title: "Intro <Go>", Start: start, End: &end, CandidateEmail: "Ann@X.com"}

	policy := entity.DefaultPolicy()
	policy.EmailFromName = "Acme Hiring"
	policy.EmailReplyTo = "talent@acme.test"

	tests := []struct {
		name     string
		req      dto.DispatchRequest
		subject  string
		contains []string
	}{
		{
			name:     "scheduled with name",
			req:      dto.DispatchRequest{Event: constant.EventScheduled, Appointment: appt, Policy: policy, Candidate: &entity.Candidate{Name: "Ann"}},
			subject:  "Interview Scheduled: Intro <Go>",
			contains: []string{"Hello Ann,", "When: Mon, 19 Oct 2026, 11:00 am IST - Mon, 19 Oct 2026, 11:30 am IST"},
		},
		{
			name: "rescheduled shows both times",
			req: dto.DispatchRequest{
				Event: constant.EventRescheduled, Appointment: appt, Policy: policy,
				Previous: &entity.Appointment{Start: start.Add(-24 * time.Hour)},
			},
			subject:  "Interview Rescheduled: Intro <Go>",
			contains: []string{"Hello,", "Previous: Sun, 18 Oct 2026, 11:00 am IST", "New: Mon, 19 Oct 2026, 11:00 am IST"},
		},
		{
			name:     "cancelled",
			req:      dto.DispatchRequest{Event: constant.EventCancelled, Appointment: appt, Policy: policy},
			subject:  "Interview Cancelled: Intro <Go>",
			contains: []string{"has been cancelled"},
		},
		{
			name:     "reminder without policy uses default zone",
			req:      dto.DispatchRequest{Event: constant.EventReminder, Appointment: appt},
			subject:  "Reminder: Interview Intro <Go>",
			contains: []string{"11:00 am IST"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg, err := renderMessage(tt.req, "recruiting@acme.test")
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if msg.Subject != tt.subject {
				t.Errorf("subject = %q, want %q", msg.Subject, tt.subject)
			}
			if msg.To != "ann@x.com" || msg.From != "recruiting@acme.test" {
				t.Errorf("addresses = %q -> %q", msg.From, msg.To)
			}
			for _, want := range tt.contains {
				if !strings.Contains(msg.Text, want) {
					t.Errorf("text missing %q:\n%s", want, msg.Text)
				}
			}
			if strings.Contains(msg.HTML, "<Go>") {
				t.Errorf("html not escaped: %s", msg.HTML)
			}
		})
	}
}

func TestRenderSenderFromPolicy(t *testing.T) {
	t.Parallel()
	p := entity.DefaultPolicy()
	p.EmailFromName = " Acme Hiring "
	p.EmailReplyTo = "talent@acme.test"
	msg, err := renderMessage(dto.DispatchRequest{
		Event:       constant.EventScheduled,
		Appointment: &entity.Appointment{ID: "a", Title: "T", Start: time.Now(), CandidateEmail: "c@x.com"},
		Policy:      p,
	}, "no-reply@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if msg.FromName != "Acme Hiring" || msg.ReplyTo != "talent@acme.test" {
		t.Errorf("sender = %q <%s>, reply-to %q", msg.FromName, msg.From, msg.ReplyTo)
	}
}

func TestOccurrenceKey(t *testing.T) {
	t.Parallel()
	a := &entity.Appointment{ID: "a1", Start: time.Date(2026, 10, 19, 5, 30, 0, 0, time.UTC)}
	if got := OccurrenceKey(constant.EventScheduled, a); got != "a1" {
		t.Errorf("scheduled key = %q", got)
	}
	if got := OccurrenceKey(constant.EventReminder, a); got != "a1" {
		t.Errorf("reminder key = %q", got)
	}
	if got := OccurrenceKey(constant.EventRescheduled, a); got != "a1@2026-10-19T05:30:00Z" {
		t.Errorf("rescheduled key = %q", got)
	}
}
