package entity

import (
	"strings"
	"time"
)

// Appointment is a scheduled interview with a single candidate.
type Appointment struct {
	ID             string     `gorm:"primaryKey;size:36"`
	Title          string     `gorm:"column:title"`
	Start          time.Time  `gorm:"column:start_at;index"`
	End            *time.Time `gorm:"column:end_at"`
	CandidateEmail string     `gorm:"column:candidate_email;index"`
	CreatedBy      string     `gorm:"column:created_by"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Appointment entity.
func (Appointment) TableName() string {
	return "appointments"
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
