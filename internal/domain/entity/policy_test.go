package entity

import (
	"testing"

	"interview-scheduler/internal/domain/constant"
)

func TestPolicyEnabled(t *testing.T) {
	t.Parallel()
	def := DefaultPolicy()
	var nilPolicy *SchedulingPolicy

	tests := []struct {
		name   string
		policy *SchedulingPolicy
		event  constant.EventType
		want   bool
	}{
		{"default scheduled", def, constant.EventScheduled, true},
		{"default rescheduled", def, constant.EventRescheduled, true},
		{"default cancelled", def, constant.EventCancelled, true},
		{"default reminder", def, constant.EventReminder, false},
		{"nil scheduled", nilPolicy, constant.EventScheduled, true},
		{"nil reminder", nilPolicy, constant.EventReminder, false},
		{"unknown type", def, constant.EventType("other"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.policy.Enabled(tt.event); got != tt.want {
				t.Errorf("Enabled(%s) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestDefaultPolicyValues(t *testing.T) {
	p := DefaultPolicy()
	if p.WorkStartMinute != 600 || p.WorkEndMinute != 1080 {
		t.Errorf("work window = %d-%d, want 600-1080", p.WorkStartMinute, p.WorkEndMinute)
	}
	if _, err := p.Location(); err != nil {
		t.Errorf("default timezone does not load: %v", err)
	}
	if p.DefaultDuration().Minutes() != 30 {
		t.Errorf("DefaultDuration = %v", p.DefaultDuration())
	}
}
