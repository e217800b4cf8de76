package entity

import (
	"time"

	"interview-scheduler/internal/domain/constant"
)

// NotificationRecord is an append-only log entry for one send attempt.
// A successful record for (type, recipient, occurrence key) means that
// occurrence has been delivered and must not be sent again.
type NotificationRecord struct {
	ID            uint               `gorm:"primaryKey;autoIncrement"`
	Recipient     string             `gorm:"column:recipient;index:idx_notification_occurrence,priority:2"`
	Type          constant.EventType `gorm:"column:type;size:16;index:idx_notification_occurrence,priority:1"`
	OccurrenceKey string             `gorm:"column:occurrence_key;index:idx_notification_occurrence,priority:3"`
	Subject       string             `gorm:"column:subject"`
	Success       bool               `gorm:"column:success"`
	Error         string             `gorm:"column:error;type:text"`
	Payload       string             `gorm:"column:payload;type:text"`
	CreatedAt     time.Time          `gorm:"index"`
}

// TableName specifies the table name for the NotificationRecord entity.
func (NotificationRecord) TableName() string {
	return "notification_logs"
}
