package dto

import (
	"time"

	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/scheduling"
)

// NotificationSettings is the notifications block of the policy.
type NotificationSettings struct {
	Scheduled       bool `json:"scheduled" yaml:"scheduled"`
	Rescheduled     bool `json:"rescheduled" yaml:"rescheduled"`
	Cancelled       bool `json:"cancelled" yaml:"cancelled"`
	Reminders       bool `json:"reminders" yaml:"reminders"`
	ReminderMinutes *int `json:"reminderMinutes,omitempty" yaml:"reminderMinutes,omitempty"`
}

// PolicyDocument is the external form of the scheduling policy, shared by the
// settings API, the YAML seed file and `schedctl policy show`.
type PolicyDocument struct {
	Timezone               string               `json:"timezone" yaml:"timezone"`
	WorkDays               []int                `json:"workDays" yaml:"workDays"`
	WorkStart              string               `json:"workStart" yaml:"workStart"`
	WorkEnd                string               `json:"workEnd" yaml:"workEnd"`
	DefaultDurationMinutes int                  `json:"defaultDurationMinutes" yaml:"defaultDurationMinutes"`
	BufferMinutes          int                  `json:"bufferMinutes" yaml:"bufferMinutes"`
	Notifications          NotificationSettings `json:"notifications" yaml:"notifications"`
	EmailFromName          string               `json:"emailFromName,omitempty" yaml:"emailFromName,omitempty"`
	EmailReplyTo           string               `json:"emailReplyTo,omitempty" yaml:"emailReplyTo,omitempty"`
	UpdatedAt              *time.Time           `json:"updatedAt,omitempty" yaml:"-"`
}

// ToPolicyDocument converts the stored policy to its external form.
func ToPolicyDocument(p *entity.SchedulingPolicy) PolicyDocument {
	rm := p.ReminderMinutes
	doc := PolicyDocument{
		Timezone:               p.Timezone,
		WorkDays:               p.WorkDays,
		WorkStart:              scheduling.FormatClock(p.WorkStartMinute),
		WorkEnd:                scheduling.FormatClock(p.WorkEndMinute),
		DefaultDurationMinutes: p.DefaultDurationMinutes,
		BufferMinutes:          p.BufferMinutes,
		Notifications: NotificationSettings{
			Scheduled:       p.NotifyScheduled,
			Rescheduled:     p.NotifyRescheduled,
			Cancelled:       p.NotifyCancelled,
			Reminders:       p.NotifyReminders,
			ReminderMinutes: &rm,
		},
		EmailFromName: p.EmailFromName,
		EmailReplyTo:  p.EmailReplyTo,
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		doc.UpdatedAt = &t
	}
	return doc
}

// UpdatePolicyRequest is the whitelisted settings update. Nil fields are kept;
// a present notifications block replaces all toggles.
type UpdatePolicyRequest struct {
	Timezone               *string               `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	WorkDays               []int                 `json:"workDays,omitempty" yaml:"workDays,omitempty"`
	WorkStart              *string               `json:"workStart,omitempty" yaml:"workStart,omitempty"`
	WorkEnd                *string               `json:"workEnd,omitempty" yaml:"workEnd,omitempty"`
	DefaultDurationMinutes *int                  `json:"defaultDurationMinutes,omitempty" yaml:"defaultDurationMinutes,omitempty"`
	BufferMinutes          *int                  `json:"bufferMinutes,omitempty" yaml:"bufferMinutes,omitempty"`
	EmailFromName          *string               `json:"emailFromName,omitempty" yaml:"emailFromName,omitempty"`
	EmailReplyTo           *string               `json:"emailReplyTo,omitempty" yaml:"emailReplyTo,omitempty"`
	Notifications          *NotificationSettings `json:"notifications,omitempty" yaml:"notifications,omitempty"`
}
