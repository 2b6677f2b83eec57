package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	orderIDPrefix    = "ORD-"
	trackingIDPrefix = "TRK-"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via NewTrackingID or TrackingIDFromString")

// OrderID is a value object identifying a shipment order. It wraps a random
// UUID and renders with the "ORD-" prefix used on customer-facing surfaces.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString. OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g. "ORD-550e8400-e29b-41d4-a716-446655440000"
type OrderID struct {
	id uuid.UUID
}

// NewOrderID generates a fresh unique order identifier.
// Identifiers are never reused across the store's lifetime.
func NewOrderID() OrderID {
	return OrderID{id: uuid.New()}
}

// OrderIDFromString parses an order identifier from its string representation.
// Accepts both the prefixed form ("ORD-<uuid>") and a bare UUID.
// Returns an error if the remainder is not a valid UUID.
func OrderIDFromString(s string) (OrderID, error) {
	raw := strings.TrimPrefix(s, orderIDPrefix)
	id, err := uuid.Parse(raw)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%q: %w", s, err))
	}
	return OrderID{id: id}, nil
}

// String returns the prefixed string representation of the order identifier.
func (o OrderID) String() string {
	return orderIDPrefix + o.id.String()
}

// UUID returns the underlying UUID for persistence and comparison.
func (o OrderID) UUID() uuid.UUID {
	return o.id
}

// IsEqual compares two order identifiers for equality.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate checks that the identifier was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (o OrderID) Validate() error {
	if o.id == uuid.Nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// TrackingID is a value object identifying the tracking projection of an order.
// Exactly one TrackingID exists per order. It wraps a random UUID and renders
// with the "TRK-" prefix handed out to customers for package tracking.
//
// The zero value of TrackingID is invalid and must be constructed using
// NewTrackingID or TrackingIDFromString.
type TrackingID struct {
	id uuid.UUID
}

// NewTrackingID generates a fresh unique tracking identifier.
func NewTrackingID() TrackingID {
	return TrackingID{id: uuid.New()}
}

// TrackingIDFromString parses a tracking identifier from its string representation.
// Accepts both the prefixed form ("TRK-<uuid>") and a bare UUID.
func TrackingIDFromString(s string) (TrackingID, error) {
	raw := strings.TrimPrefix(s, trackingIDPrefix)
	id, err := uuid.Parse(raw)
	if err != nil {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId", fmt.Errorf("%q: %w", s, err))
	}
	return TrackingID{id: id}, nil
}

// String returns the prefixed string representation of the tracking identifier.
func (t TrackingID) String() string {
	return trackingIDPrefix + t.id.String()
}

// UUID returns the underlying UUID for persistence and comparison.
func (t TrackingID) UUID() uuid.UUID {
	return t.id
}

// IsEqual compares two tracking identifiers for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}

// Validate checks that the identifier was created through a constructor.
// Returns ErrTrackingIDIsNotConstructed for the zero value.
func (t TrackingID) Validate() error {
	if t.id == uuid.Nil {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
