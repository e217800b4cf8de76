package scheduling

import (
	"time"

	"interview-scheduler/internal/domain/entity"
)

// instantWidth is the length given to an appointment without an end.
const instantWidth = time.Millisecond

// HasConflict reports whether the proposed interval, widened by buffer on
// both sides, overlaps any appointment of the same candidate. The existing
// appointments are not widened. excludeID skips the appointment being moved.
func HasConflict(candidateEmail string, start time.Time, end *time.Time, buffer time.Duration, existing []*entity.Appointment, excludeID string) bool {
	email := entity.NormalizeEmail(candidateEmail)
	effStart := start.Add(-buffer)
	effEnd := start.Add(instantWidth)
	if end != nil {
		effEnd = *end
	}
	effEnd = effEnd.Add(buffer)

	for _, a := range existing {
		if a == nil || (excludeID != "" && a.ID == excludeID) {
			continue
		}
		if entity.NormalizeEmail(a.CandidateEmail) != email {
			continue
		}
		if a.End != nil {
			if a.Start.Before(effEnd) && a.End.After(effStart) {
				return true
			}
			continue
		}
		if !a.Start.Before(effStart) && !a.Start.After(effEnd) {
			return true
		}
	}
	return false
}
