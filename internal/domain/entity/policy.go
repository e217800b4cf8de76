package entity

import (
	"time"
	_ "time/tzdata" // embedded zone database

	"interview-scheduler/internal/domain/constant"
)

// PolicyID is the primary key of the singleton policy row.
const PolicyID uint = 1

// SchedulingPolicy is the single recruiter-owned policy read by both the
// validation and notification engines.
type SchedulingPolicy struct {
	ID                     uint   `gorm:"primaryKey"`
	Timezone               string `gorm:"column:timezone"`
	WorkDays               []int  `gorm:"column:work_days;serializer:json"`
	WorkStartMinute        int    `gorm:"column:work_start_minute"`
	WorkEndMinute          int    `gorm:"column:work_end_minute"`
	DefaultDurationMinutes int    `gorm:"column:default_duration_minutes"`
	BufferMinutes          int    `gorm:"column:buffer_minutes"`

	NotifyScheduled   bool `gorm:"column:notify_scheduled"`
	NotifyRescheduled bool `gorm:"column:notify_rescheduled"`
	NotifyCancelled   bool `gorm:"column:notify_cancelled"`
	NotifyReminders   bool `gorm:"column:notify_reminders"`
	ReminderMinutes   int  `gorm:"column:reminder_minutes"`

	EmailFromName string `gorm:"column:email_from_name"`
	EmailReplyTo  string `gorm:"column:email_reply_to"`

	UpdatedAt time.Time
}

// TableName specifies the table name for the SchedulingPolicy entity.
func (SchedulingPolicy) TableName() string {
	return "scheduling_policy"
}

// DefaultReminderMinutes is the reminder lead time used when none is given.
const DefaultReminderMinutes = 120

// DefaultPolicy returns the policy stored when none exists yet.
func DefaultPolicy() *SchedulingPolicy {
	return &SchedulingPolicy{
		ID:                     PolicyID,
		Timezone:               "Asia/Kolkata",
		WorkDays:               []int{1, 2, 3, 4, 5},
		WorkStartMinute:        10 * 60,
		WorkEndMinute:          18 * 60,
		DefaultDurationMinutes: 30,
		BufferMinutes:          0,
		NotifyScheduled:        true,
		NotifyRescheduled:      true,
		NotifyCancelled:        true,
		NotifyReminders:        false,
		ReminderMinutes:        DefaultReminderMinutes,
	}
}

// Enabled reports whether notifications of type e should be sent.
// A nil policy sends lifecycle events and no reminders.
func (p *SchedulingPolicy) Enabled(e constant.EventType) bool {
	if p == nil {
		return e != constant.EventReminder
	}
	switch e {
	case constant.EventScheduled:
		return p.NotifyScheduled
	case constant.EventRescheduled:
		return p.NotifyRescheduled
	case constant.EventCancelled:
		return p.NotifyCancelled
	case constant.EventReminder:
		return p.NotifyReminders
	}
	return false
}

// Location resolves the policy timezone. A nil policy or empty timezone is UTC.
func (p *SchedulingPolicy) Location() (*time.Location, error) {
	if p == nil || p.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(p.Timezone)
}

// Buffer is the buffer as a duration; nil policies have none.
func (p *SchedulingPolicy) Buffer() time.Duration {
	if p == nil || p.BufferMinutes < 0 {
		return 0
	}
	return time.Duration(p.BufferMinutes) * time.Minute
}

// DefaultDuration is the duration applied when an appointment has no end.
func (p *SchedulingPolicy) DefaultDuration() time.Duration {
	if p == nil || p.DefaultDurationMinutes <= 0 {
		return 0
	}
	return time.Duration(p.DefaultDurationMinutes) * time.Minute
}
