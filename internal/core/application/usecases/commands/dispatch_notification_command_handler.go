package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"logistics/internal/core/ports"
)

// Notification channel names as they appear in results and log entries.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// ChannelFailure records a single channel attempt that did not go through.
type ChannelFailure struct {
	Channel string
	Err     error
}

// NotificationResult itemizes the outcome of a notification fan-out.
// A failed channel never hides a successful one; callers inspect both slices.
type NotificationResult struct {
	Sent   []string
	Failed []ChannelFailure
}

// DispatchNotificationCommandHandler sends a rendered notification to every
// channel the customer has registered. Channel attempts are independent and
// every attempt is written to the notification log; log write failures are
// swallowed so they never mask the delivery outcome.
type DispatchNotificationCommandHandler struct {
	directory ports.CustomerDirectory
	sms       ports.SMSSender
	email     ports.EmailSender
	log       ports.NotificationLog
	logger    *slog.Logger
	seq       atomic.Uint64
}

// NewDispatchNotificationCommandHandler creates a handler for customer
// notifications.
func NewDispatchNotificationCommandHandler(
	directory ports.CustomerDirectory,
	sms ports.SMSSender,
	email ports.EmailSender,
	log ports.NotificationLog,
) *DispatchNotificationCommandHandler {
	return &DispatchNotificationCommandHandler{
		directory: directory,
		sms:       sms,
		email:     email,
		log:       log,
		logger:    slog.Default().With("component", "dispatch-notification"),
	}
}

// Handle processes the notification command.
// An unknown customer is the only hard failure; it is logged as a failed
// attempt and returned. Channel failures come back itemized in the result.
func (h *DispatchNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchNotificationCommand,
) (NotificationResult, error) {
	if err := cmd.Validate(); err != nil {
		return NotificationResult{}, err
	}

	contacts, err := h.directory.Contacts(ctx, cmd.CustomerID())
	if err != nil {
		h.record(ctx, cmd, "", ports.NotificationFailed, err)
		return NotificationResult{}, err
	}

	message := cmd.NotificationType().Message(cmd.OrderID(), cmd.Data())

	var result NotificationResult

	if contacts.PhoneNumber != "" {
		if sendErr := h.sms.SendSMS(ctx, contacts.PhoneNumber, message); sendErr != nil {
			h.record(ctx, cmd, ChannelSMS, ports.NotificationFailed, sendErr)
			result.Failed = append(result.Failed, ChannelFailure{Channel: ChannelSMS, Err: sendErr})
		} else {
			h.record(ctx, cmd, ChannelSMS, ports.NotificationSent, nil)
			result.Sent = append(result.Sent, ChannelSMS)
		}
	}

	if contacts.Email != "" {
		subject := cmd.NotificationType().Subject()
		if sendErr := h.email.SendEmail(ctx, contacts.Email, subject, message); sendErr != nil {
			h.record(ctx, cmd, ChannelEmail, ports.NotificationFailed, sendErr)
			result.Failed = append(result.Failed, ChannelFailure{Channel: ChannelEmail, Err: sendErr})
		} else {
			h.record(ctx, cmd, ChannelEmail, ports.NotificationSent, nil)
			result.Sent = append(result.Sent, ChannelEmail)
		}
	}

	return result, nil
}

func (h *DispatchNotificationCommandHandler) record(
	ctx context.Context,
	cmd DispatchNotificationCommand,
	channel string,
	status ports.NotificationDeliveryStatus,
	attemptErr error,
) {
	now := time.Now()
	// The millisecond timestamp alone collides when two channel attempts land
	// in the same tick; the sequence component keeps every entry ID unique.
	entry := ports.NotificationLogEntry{
		ID:         fmt.Sprintf("%s-%d-%d", cmd.OrderID(), now.UnixMilli(), h.seq.Add(1)),
		OrderID:    cmd.OrderID().String(),
		CustomerID: cmd.CustomerID(),
		Type:       cmd.NotificationType().String(),
		Channel:    channel,
		Status:     status,
		SentAt:     now,
	}
	if attemptErr != nil {
		entry.Error = attemptErr.Error()
	}

	if err := h.log.Record(ctx, entry); err != nil {
		h.logger.Warn("notification log write failed",
			"orderId", entry.OrderID,
			"channel", channel,
			"error", err,
		)
	}
}
