package scheduling

import (
	"slices"
	"time"

	"interview-scheduler/internal/domain/entity"
)

// IsWithinWorkingHours reports whether t falls on a working day and inside
// the working window of the policy, both window ends inclusive. The window is
// not wrapped past midnight, so an inverted window matches nothing. An
// unknown timezone never matches.
func IsWithinWorkingHours(t time.Time, policy *entity.SchedulingPolicy) bool {
	if policy == nil {
		return true
	}
	loc, err := policy.Location()
	if err != nil {
		return false
	}
	local := t.In(loc)
	if !slices.Contains(policy.WorkDays, int(local.Weekday())) {
		return false
	}
	minutes := local.Hour()*60 + local.Minute()
	return policy.WorkStartMinute <= minutes && minutes <= policy.WorkEndMinute
}
