// Package notificationlog persists the append-only notification audit trail.
package notificationlog

import (
	"context"
	"time"

	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// EntryDTO represents the database structure for one notification attempt.
// Rows are insert-only; nothing updates or deletes them.
type EntryDTO struct {
	ID         string `gorm:"primaryKey"`
	OrderID    string `gorm:"index"`
	CustomerID string
	Type       string
	Channel    string
	Status     string
	Error      string
	SentAt     time.Time
}

// TableName specifies the database table name for notification log entries.
func (EntryDTO) TableName() string {
	return "notification_log"
}

// GormNotificationLog implements NotificationLog using GORM.
type GormNotificationLog struct {
	db *gorm.DB
}

// NewGormNotificationLog creates a new GORM notification log.
func NewGormNotificationLog(db *gorm.DB) *GormNotificationLog {
	return &GormNotificationLog{db: db}
}

// Record inserts one audit entry. Errors are returned to the caller, which is
// expected to log and continue rather than fail the notification.
func (l *GormNotificationLog) Record(ctx context.Context, entry ports.NotificationLogEntry) error {
	dto := EntryDTO{
		ID:         entry.ID,
		OrderID:    entry.OrderID,
		CustomerID: entry.CustomerID,
		Type:       entry.Type,
		Channel:    entry.Channel,
		Status:     string(entry.Status),
		Error:      entry.Error,
		SentAt:     entry.SentAt,
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
