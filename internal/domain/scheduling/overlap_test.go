package scheduling

import (
	"testing"
	"time"

	"interview-scheduler/internal/domain/entity"
)

func TestHasConflict(t *testing.T) {
	t.Parallel()

	const email = "c@x.com"
	ptr := func(s string) *time.Time {
		v := mustTime(t, s)
		return &v
	}

	tests := []struct {
		name     string
		start    string
		end      *time.Time
		buffer   time.Duration
		existing []*entity.Appointment
		exclude  string
		want     bool
	}{
		{
			name:     "touching intervals do not overlap",
			start:    "2026-10-19T10:30:00Z",
			end:      ptr("2026-10-19T11:00:00Z"),
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T10:00:00Z", "2026-10-19T10:30:00Z")},
		},
		{
			name:     "contained interval overlaps",
			start:    "2026-10-19T10:10:00Z",
			end:      ptr("2026-10-19T10:20:00Z"),
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T10:00:00Z", "2026-10-19T10:30:00Z")},
			want:     true,
		},
		{
			name:     "buffer widens a touching interval into a conflict",
			start:    "2026-10-19T10:30:00Z",
			end:      ptr("2026-10-19T11:00:00Z"),
			buffer:   time.Minute,
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T10:00:00Z", "2026-10-19T10:30:00Z")},
			want:     true,
		},
		{
			name:     "instant existing at proposed end is inclusive",
			start:    "2026-10-19T10:30:00Z",
			end:      ptr("2026-10-19T11:00:00Z"),
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T11:00:00Z", "")},
			want:     true,
		},
		{
			name:     "instant existing before proposed start",
			start:    "2026-10-19T10:30:00Z",
			end:      ptr("2026-10-19T11:00:00Z"),
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T10:29:00Z", "")},
		},
		{
			name:     "instant proposal against same instant",
			start:    "2026-10-19T10:30:00Z",
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T10:30:00Z", "")},
			want:     true,
		},
		{
			name:     "instant proposal inside existing interval",
			start:    "2026-10-19T10:15:00Z",
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T10:00:00Z", "2026-10-19T10:30:00Z")},
			want:     true,
		},
		{
			name:     "excluded appointment is skipped",
			start:    "2026-10-19T10:10:00Z",
			end:      ptr("2026-10-19T10:20:00Z"),
			existing: []*entity.Appointment{appt(t, "a", email, "2026-10-19T10:00:00Z", "2026-10-19T10:30:00Z")},
			exclude:  "a",
		},
		{
			name:     "nil entries are ignored",
			start:    "2026-10-19T10:10:00Z",
			existing: []*entity.Appointment{nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := HasConflict(email, mustTime(t, tt.start), tt.end, tt.buffer, tt.existing, tt.exclude)
			if got != tt.want {
				t.Errorf("HasConflict = %v, want %v", got, tt.want)
			}
		})
	}
}
