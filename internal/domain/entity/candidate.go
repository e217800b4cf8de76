package entity

import (
	"time"

	"interview-scheduler/internal/domain/constant"
)

// Candidate is the person invited to interviews, keyed by normalized email.
type Candidate struct {
	Email      string                   `gorm:"primaryKey;column:email"`
	Name       string                   `gorm:"column:name"`
	Notes      string                   `gorm:"column:notes;type:text"`
	Status     constant.CandidateStatus `gorm:"column:status;size:16"`
	DoNotEmail bool                     `gorm:"column:do_not_email"`
	CreatedBy  string                   `gorm:"column:created_by"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the Candidate entity.
func (Candidate) TableName() string {
	return "candidates"
}
