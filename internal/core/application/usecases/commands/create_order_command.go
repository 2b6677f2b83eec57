package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired   = errors.New("customer id is required")
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrPackageTypeIsRequired  = errors.New("package type is required")
)

// CreateOrderCommand represents a request to register a new shipment order.
// Encapsulates the immutable order details together with the identifiers
// generated for the order and its tracking record.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewOrderID(), kernel.NewTrackingID(), details)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.OrderID
	trackingID kernel.TrackingID
	details    order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Validates identifiers and the required detail fields; addresses and
// priority are validated again by the aggregate constructor.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	trackingID kernel.TrackingID,
	details order.Details,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTrackingID(trackingID),
		orderCommand.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// TrackingID returns the tracking number assigned to the order.
func (c CreateOrderCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Details returns the business payload captured when the order was placed.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if details.CustomerID == "" {
		return ErrCustomerIDIsRequired
	}
	if details.CustomerName == "" {
		return ErrCustomerNameIsRequired
	}
	if details.PackageType == "" {
		return ErrPackageTypeIsRequired
	}

	c.details = details
	return nil
}
