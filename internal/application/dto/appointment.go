package dto

import (
	"time"

	"interview-scheduler/internal/domain/entity"
)

// AppointmentResponse is the DTO for listing appointments.
type AppointmentResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Start          time.Time  `json:"start"`
	End            *time.Time `json:"end,omitempty"`
	CandidateEmail string     `json:"candidateEmail"`
	CandidateName  string     `json:"candidateName,omitempty"`
	CreatedBy      string     `json:"createdBy,omitempty"`
}

// ToAppointmentResponse converts an entity.Appointment to an AppointmentResponse DTO.
func ToAppointmentResponse(a *entity.Appointment, candidateName string) AppointmentResponse {
	return AppointmentResponse{
		ID:             a.ID,
		Title:          a.Title,
		Start:          a.Start,
		End:            a.End,
		CandidateEmail: a.CandidateEmail,
		CandidateName:  candidateName,
		CreatedBy:      a.CreatedBy,
	}
}

// CreateAppointmentRequest is the DTO for scheduling a new interview.
type CreateAppointmentRequest struct {
	Title          string `json:"title"`
	Start          string `json:"start"`
	End            string `json:"end,omitempty"`
	CandidateEmail string `json:"candidateEmail"`
	CandidateName  string `json:"candidateName,omitempty"`
}

// UpdateAppointmentRequest is a partial update; nil fields are left unchanged.
// An empty End clears the end.
type UpdateAppointmentRequest struct {
	Title          *string `json:"title,omitempty"`
	Start          *string `json:"start,omitempty"`
	End            *string `json:"end,omitempty"`
	CandidateEmail *string `json:"candidateEmail,omitempty"`
	CandidateName  *string `json:"candidateName,omitempty"`
}

// MutationResponse reports a committed state change separately from the
// outcome of the notification that followed it.
type MutationResponse struct {
	OK           bool           `json:"ok"`
	ID           string         `json:"id"`
	End          *time.Time     `json:"end,omitempty"`
	EmailSent    bool           `json:"emailSent"`
	SkipReason   string         `json:"skipReason,omitempty"`
	Notification DispatchResult `json:"notification"`
}

// NewMutationResponse builds the response for a committed mutation.
func NewMutationResponse(id string, end *time.Time, res DispatchResult) MutationResponse {
	return MutationResponse{
		OK:           true,
		ID:           id,
		End:          end,
		EmailSent:    res.Sent(),
		SkipReason:   res.SkipReason(),
		Notification: res,
	}
}
