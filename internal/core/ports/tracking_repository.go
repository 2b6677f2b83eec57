package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for tracking records.
// Each record mirrors the stored state of exactly one order.
type TrackingRepository interface {
	// Add persists a new tracking record to storage.
	// The record must be valid and not already exist in the repository.
	Add(ctx context.Context, record *tracking.Record) error

	// Update persists changes to an existing tracking record.
	Update(ctx context.Context, record *tracking.Record) error

	// Get retrieves a tracking record by its tracking number.
	Get(ctx context.Context, id kernel.TrackingID) (*tracking.Record, error)

	// GetByOrderID retrieves the tracking record associated with an order.
	GetByOrderID(ctx context.Context, id kernel.OrderID) (*tracking.Record, error)
}
