package constant

// EventType identifies the kind of notification sent to a candidate.
type EventType string

const (
	EventScheduled   EventType = "scheduled"
	EventRescheduled EventType = "rescheduled"
	EventCancelled   EventType = "cancelled"
	EventReminder    EventType = "reminder"
)

func (e EventType) String() string {
	return string(e)
}

// Valid reports whether e is a known event type.
func (e EventType) Valid() bool {
	switch e {
	case EventScheduled, EventRescheduled, EventCancelled, EventReminder:
		return true
	}
	return false
}

// Outcome is the result of a single dispatch attempt.
type Outcome string

const (
	OutcomeSent       Outcome = "sent"
	OutcomeSuppressed Outcome = "suppressed"
	OutcomeFailed     Outcome = "failed"
)

// Reasons reported when a notification is not delivered.
const (
	SkipDisabledBySettings = "disabled_by_settings"
	SkipCandidateMuted     = "candidate_muted"
	SkipAlreadySent        = "already sent"
	SkipSendFailed         = "send_failed"
	SkipCandidateUnknown   = "candidate_lookup_failed"
)

// CandidateStatus is the lifecycle status of a candidate record.
type CandidateStatus string

const (
	CandidateActive   CandidateStatus = "active"
	CandidateInactive CandidateStatus = "inactive"
)

// Audit actions recorded after recruiter mutations.
const (
	AuditCreated          = "created"
	AuditUpdated          = "updated"
	AuditDeleted          = "deleted"
	AuditPolicyUpdated    = "policy_updated"
	AuditCandidateUpdated = "candidate_updated"
)
