// Package ports defines the interfaces between the domain layer and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their complete timeline history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its status and full timeline.
	// When called inside a transaction the row is locked for update,
	// serializing concurrent status changes on the same order.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByTrackingID retrieves the order associated with a tracking number.
	GetByTrackingID(ctx context.Context, id kernel.TrackingID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal
	// status. Used by the monitoring jobs to decide which orders to evaluate
	// against current weather and traffic conditions.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// FindByDeliveryAddress retrieves all non-terminal orders whose delivery
	// address contains the given fragment. Matching is case-insensitive
	// substring containment, so "Manhattan" matches
	// "350 5th Ave, Manhattan, NY".
	FindByDeliveryAddress(ctx context.Context, fragment string) ([]*order.Order, error)
}
