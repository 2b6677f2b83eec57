package ports

import (
	"context"
	"time"
)

// SMSSender delivers a short text message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, phoneNumber string, message string) error
}

// EmailSender delivers an email to an address.
type EmailSender interface {
	SendEmail(ctx context.Context, email string, subject string, body string) error
}

// NotificationDeliveryStatus records the outcome of a channel attempt.
type NotificationDeliveryStatus string

const (
	NotificationSent   NotificationDeliveryStatus = "sent"
	NotificationFailed NotificationDeliveryStatus = "failed"
)

// NotificationLogEntry is the audit record written after every channel
// attempt, successful or not.
type NotificationLogEntry struct {
	ID         string
	OrderID    string
	CustomerID string
	Type       string
	Channel    string
	Status     NotificationDeliveryStatus
	Error      string
	SentAt     time.Time
}

// NotificationLog persists notification audit records. A failure to write the
// log must never fail the notification itself; callers log and move on.
type NotificationLog interface {
	Record(ctx context.Context, entry NotificationLogEntry) error
}
