package constant

// Role is the capability an authenticated caller holds.
type Role string

const (
	// RoleRecruiter may create, reschedule and cancel interviews and edit settings.
	RoleRecruiter Role = "recruiter"
	// RoleCandidate may only read their own interviews.
	RoleCandidate Role = "candidate"
)
