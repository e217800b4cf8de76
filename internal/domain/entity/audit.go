package entity

import "time"

// AuditEntry records a recruiter mutation.
type AuditEntry struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ActorEmail string    `gorm:"column:actor_email;index"`
	Action     string    `gorm:"column:action"`
	Entity     string    `gorm:"column:entity"`
	EntityID   string    `gorm:"column:entity_id"`
	Details    string    `gorm:"column:details;type:text"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the table name for the AuditEntry entity.
func (AuditEntry) TableName() string {
	return "audit_logs"
}
