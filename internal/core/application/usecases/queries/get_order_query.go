// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full timeline.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	order, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// TimelineEventResponse is one audit timeline entry in the read model.
type TimelineEventResponse struct {
	Status    string
	Timestamp time.Time
	Location  string
}

// OrderResponse represents a full order in the read model. It carries the
// stored (authoritative) status; the time-derived display status only appears
// in tracking responses.
type OrderResponse struct {
	ID                  string
	TrackingID          string
	CustomerID          string
	CustomerName        string
	PickupAddress       string
	DeliveryAddress     string
	PackageType         string
	Priority            string
	SpecialInstructions string
	Status              string
	DelayReason         string
	Timeline            []TimelineEventResponse
	CreatedAt           time.Time
	EstimatedDelivery   time.Time
	UpdatedAt           time.Time
}
