package errors

import "errors"

// Scheduling rejections. The messages are returned verbatim to API clients.
var (
	ErrInvalidStart        = errors.New("invalid start")
	ErrInvalidEnd          = errors.New("invalid end")
	ErrEndBeforeStart      = errors.New("end before start")
	ErrOutsideWorkingHours = errors.New("outside working days/hours")
	ErrOverlap             = errors.New("overlapping interview for candidate (buffer applied)")
)

// Custom application errors
var (
	ErrMissingFields       = errors.New("missing required fields: title, start, candidateEmail") // Create request incomplete
	ErrInvalidEmail        = errors.New("candidateEmail required")                              // Candidate upsert without email
	ErrInvalidInput        = errors.New("invalid input")                                        // Malformed request field
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrPolicyNotFound      = errors.New("scheduling policy not found")
	ErrInvalidPolicy       = errors.New("invalid scheduling policy")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrCandidateBusy       = errors.New("another change for this candidate is in progress") // Lock not acquired
	ErrDatabaseOperation   = errors.New("database operation failed")                        // Generic database error
	ErrMailTransport       = errors.New("mail transport failed")                            // Generic SMTP error
	ErrScheduling          = errors.New("scheduling failed")                                // Generic cron error
	ErrInternalServer      = errors.New("internal server error")                            // Generic internal error
)

// IsRejection reports whether err is one of the scheduling rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidStart) ||
		errors.Is(err, ErrInvalidEnd) ||
		errors.Is(err, ErrEndBeforeStart) ||
		errors.Is(err, ErrOutsideWorkingHours) ||
		errors.Is(err, ErrOverlap)
}
