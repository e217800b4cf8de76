package scheduling

import (
	"strings"
	"time"

	"interview-scheduler/internal/domain/entity"
	appErrors "interview-scheduler/internal/pkg/errors"
)

// Request is a proposed create or reschedule.
type Request struct {
	Start          string
	End            string // empty when absent
	CandidateEmail string
	ExcludeID      string // appointment being rescheduled
}

// Accepted carries the normalized interval of an accepted request.
type Accepted struct {
	Start time.Time
	End   *time.Time
}

// Validate runs the scheduling checks in order and returns the first
// rejection. existing should hold the candidate's appointments; entries for
// other candidates are ignored. A nil policy skips the working-hours check
// and applies no buffer or default duration.
func Validate(req Request, policy *entity.SchedulingPolicy, existing []*entity.Appointment) (Accepted, error) {
	loc, err := policy.Location()
	if err != nil {
		loc = time.UTC
	}

	start, ok := ParseInstant(req.Start, loc)
	if !ok {
		return Accepted{}, appErrors.ErrInvalidStart
	}

	var end *time.Time
	if strings.TrimSpace(req.End) != "" {
		e, ok := ParseInstant(req.End, loc)
		if !ok {
			return Accepted{}, appErrors.ErrInvalidEnd
		}
		end = &e
	} else if d := policy.DefaultDuration(); d > 0 {
		e := start.Add(d)
		end = &e
	}

	if end != nil && !end.After(start) {
		return Accepted{}, appErrors.ErrEndBeforeStart
	}

	if policy != nil && !IsWithinWorkingHours(start, policy) {
		return Accepted{}, appErrors.ErrOutsideWorkingHours
	}

	if HasConflict(req.CandidateEmail, start, end, policy.Buffer(), existing, req.ExcludeID) {
		return Accepted{}, appErrors.ErrOverlap
	}

	return Accepted{Start: start, End: end}, nil
}
