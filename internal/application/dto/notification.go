package dto

import (
	"time"

	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
)

// EmailMessage is a rendered message handed to the mail transport.
type EmailMessage struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// DispatchRequest asks the notification engine to deliver one event.
type DispatchRequest struct {
	Event       constant.EventType
	Appointment *entity.Appointment
	// Previous holds the pre-move copy for rescheduled events.
	Previous  *entity.Appointment
	Policy    *entity.SchedulingPolicy
	Candidate *entity.Candidate
	// CandidateUnknown marks a failed candidate lookup; the mute flag
	// cannot be checked, so nothing is sent.
	CandidateUnknown bool
}

// DispatchResult is the outcome of one dispatch.
type DispatchResult struct {
	Outcome       constant.Outcome   `json:"outcome"`
	Event         constant.EventType `json:"type"`
	OccurrenceKey string             `json:"occurrenceKey,omitempty"`
	Reason        string             `json:"reason,omitempty"`
	Detail        string             `json:"detail,omitempty"`
}

// Sent reports whether the message was delivered.
func (r DispatchResult) Sent() bool { return r.Outcome == constant.OutcomeSent }

// SkipReason is the short reason reported to API clients when nothing was sent.
func (r DispatchResult) SkipReason() string {
	switch r.Outcome {
	case constant.OutcomeSuppressed:
		return r.Reason
	case constant.OutcomeFailed:
		return constant.SkipSendFailed
	}
	return ""
}

// NotificationRecordResponse is the DTO for the notification log.
type NotificationRecordResponse struct {
	ID            uint               `json:"id"`
	Recipient     string             `json:"to"`
	Type          constant.EventType `json:"type"`
	OccurrenceKey string             `json:"occurrenceKey"`
	Subject       string             `json:"subject"`
	Success       bool               `json:"success"`
	Error         string             `json:"error,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ToNotificationRecordResponseList converts log entries to DTOs.
func ToNotificationRecordResponseList(recs []*entity.NotificationRecord) []NotificationRecordResponse {
	list := make([]NotificationRecordResponse, len(recs))
	for i, r := range recs {
		list[i] = NotificationRecordResponse{
			ID:            r.ID,
			Recipient:     r.Recipient,
			Type:          r.Type,
			OccurrenceKey: r.OccurrenceKey,
			Subject:       r.Subject,
			Success:       r.Success,
			Error:         r.Error,
			CreatedAt:     r.CreatedAt,
		}
	}
	return list
}

// SweepResult summarises one reminder sweep.
type SweepResult struct {
	Disabled    bool      `json:"disabled,omitempty"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`
	Due         int       `json:"due"`
	Sent        int       `json:"sent"`
	Suppressed  int       `json:"suppressed"`
	AlreadySent int       `json:"alreadySent"`
	Failed      int       `json:"failed"`
}
