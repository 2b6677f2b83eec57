package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Location and delay reason are optional; an empty location
// falls back to the default timeline location, and the delay reason only
// applies when the new status is Delayed.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	newStatus   order.Status
	location    string
	delayReason string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID is constructed and the status is a known one.
func NewUpdateOrderStatusCommand(
	orderID kernel.OrderID,
	newStatus order.Status,
	location string,
	delayReason string,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	statusCommand.location = location
	statusCommand.delayReason = delayReason

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// NewStatus returns the status the order should move to.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Location returns the location recorded with the timeline event.
// May be empty.
func (c UpdateOrderStatusCommand) Location() string {
	return c.location
}

// DelayReason returns the reason recorded when the new status is Delayed.
// May be empty.
func (c UpdateOrderStatusCommand) DelayReason() string {
	return c.delayReason
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
