package service

import (
	"context"

	"interview-scheduler/internal/application/dto"
)

// Mailer is the outbound mail transport.
type Mailer interface {
	Send(ctx context.Context, msg dto.EmailMessage) error
}

// Alerter notifies operators of failed deliveries.
type Alerter interface {
	Alert(text string) error
}

// NotificationService defines the Notification Dispatch Engine.
type NotificationService interface {
	// Dispatch decides whether to send, sends, and records the attempt.
	// Delivery problems are reported in the result, never as an error.
	Dispatch(ctx context.Context, req dto.DispatchRequest) dto.DispatchResult
	// ListRecords returns the notification log, newest first.
	ListRecords(ctx context.Context, recipient string) ([]dto.NotificationRecordResponse, error)
}
