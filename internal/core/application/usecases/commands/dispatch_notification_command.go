package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/guard"
)

var (
	ErrDispatchNotificationCommandIsNotConstructed = errors.New(
		"DispatchNotificationCommand must be created via NewDispatchNotificationCommand constructor",
	)
	ErrNotificationCustomerIDIsRequired = errors.New("customer id is required")
	ErrNotificationTypeIsRequired       = errors.New("notification type is required")
)

// DispatchNotificationCommand represents a request to notify a customer about
// an order event through every contact channel they have registered.
type DispatchNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.OrderID
	customerID       string
	notificationType notification.Type
	data             notification.TemplateData

	guard guard.ConstructorGuard
}

// NewDispatchNotificationCommand creates a command to send a customer
// notification. The template data only needs the fields the notification type
// actually renders.
func NewDispatchNotificationCommand(
	orderID kernel.OrderID,
	customerID string,
	notificationType notification.Type,
	data notification.TemplateData,
) (DispatchNotificationCommand, error) {
	notificationCommand := DispatchNotificationCommand{
		data:  data,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		notificationCommand.setOrderID(orderID),
		notificationCommand.setCustomerID(customerID),
		notificationCommand.setNotificationType(notificationType),
	); err != nil {
		return DispatchNotificationCommand{}, err
	}

	return notificationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchNotificationCommandIsNotConstructed if validation fails.
func (c DispatchNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationCommandIsNotConstructed)
}

// OrderID returns the order the notification is about.
func (c DispatchNotificationCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerID returns the customer to notify.
func (c DispatchNotificationCommand) CustomerID() string {
	return c.customerID
}

// NotificationType returns the template to render.
func (c DispatchNotificationCommand) NotificationType() notification.Type {
	return c.notificationType
}

// Data returns the values substituted into the message template.
func (c DispatchNotificationCommand) Data() notification.TemplateData {
	return c.data
}

func (c *DispatchNotificationCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchNotificationCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrNotificationCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *DispatchNotificationCommand) setNotificationType(notificationType notification.Type) error {
	if notificationType == "" {
		return ErrNotificationTypeIsRequired
	}

	c.notificationType = notificationType
	return nil
}
