package dto

import (
	"time"

	"interview-scheduler/internal/domain/constant"
	"interview-scheduler/internal/domain/entity"
)

// CandidateResponse is the DTO for candidate listings.
type CandidateResponse struct {
	Email      string                   `json:"candidateEmail"`
	Name       string                   `json:"candidateName"`
	Notes      string                   `json:"notes"`
	Status     constant.CandidateStatus `json:"status"`
	DoNotEmail bool                     `json:"doNotEmail"`
	CreatedBy  string                   `json:"createdBy"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
}

// ToCandidateResponse converts an entity.Candidate to a CandidateResponse DTO.
func ToCandidateResponse(c *entity.Candidate) CandidateResponse {
	return CandidateResponse{
		Email:      c.Email,
		Name:       c.Name,
		Notes:      c.Notes,
		Status:     c.Status,
		DoNotEmail: c.DoNotEmail,
		CreatedBy:  c.CreatedBy,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToCandidateResponseList converts a slice of entity.Candidate to DTOs.
func ToCandidateResponseList(cs []*entity.Candidate) []CandidateResponse {
	list := make([]CandidateResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCandidateResponse(c)
	}
	return list
}

// UpsertCandidateRequest creates or edits a candidate. Nil fields are kept.
type UpsertCandidateRequest struct {
	Email      string                    `json:"candidateEmail"`
	Name       *string                   `json:"candidateName,omitempty"`
	Notes      *string                   `json:"notes,omitempty"`
	Status     *constant.CandidateStatus `json:"status,omitempty"`
	DoNotEmail *bool                     `json:"doNotEmail,omitempty"`
}

// CandidateDetail is a candidate with their interviews and email history.
type CandidateDetail struct {
	Candidate     CandidateResponse            `json:"candidate"`
	Appointments  []AppointmentResponse        `json:"events"`
	Notifications []NotificationRecordResponse `json:"emails"`
}

// EnsureResult tells whether EnsureCandidate created or patched the record.
type EnsureResult string

const (
	CandidateInserted EnsureResult = "inserted"
	CandidatePatched  EnsureResult = "patched"
)
