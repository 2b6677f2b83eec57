package order

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrTimelineIsEmpty is returned when restoring an order whose persisted
	// timeline lost its mandatory "Order Placed" event.
	ErrTimelineIsEmpty = errors.New("order timeline must contain at least the Order Placed event")
)

const (
	// PlacedEventLabel is the label of the mandatory first timeline event.
	PlacedEventLabel = "Order Placed"

	// PlacedEventLocation is where every order timeline starts.
	PlacedEventLocation = "Online Platform"

	// DefaultEventLocation is used when a status change carries no location.
	DefaultEventLocation = "System Update"

	// DefaultDeliveryWindow is the initial estimated-delivery horizon.
	DefaultDeliveryWindow = 24 * time.Hour

	// DefaultDelayExtension is added to the delivery estimate when an order is
	// delayed without an explicit extension.
	DefaultDelayExtension = 2 * time.Hour
)

// Priority is the service level requested for a shipment.
type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityExpress  Priority = "express"
	PriorityUrgent   Priority = "urgent"
)

// Validate checks that the priority is one of the known service levels.
func (p Priority) Validate() error {
	switch p {
	case PriorityStandard, PriorityExpress, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidError("priority")
	}
}

// Details is the immutable business payload captured when an order is placed.
// It never changes after creation; only lifecycle state does.
type Details struct {
	CustomerID          string
	CustomerName        string
	PickupAddress       kernel.Location
	DeliveryAddress     kernel.Location
	PackageType         string
	Priority            Priority
	SpecialInstructions string
}

// validate checks the payload invariants. An empty priority defaults to
// standard before validation.
func (d *Details) validate() error {
	if d.CustomerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	if d.CustomerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if err := d.PickupAddress.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupAddress", err)
	}
	if err := d.DeliveryAddress.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryAddress", err)
	}
	if d.PackageType == "" {
		return errs.NewValueIsRequiredError("packageType")
	}
	if d.Priority == "" {
		d.Priority = PriorityStandard
	}
	return d.Priority.Validate()
}

// Order is the aggregate root for a shipment order. It owns the authoritative
// lifecycle status and the append-only audit timeline.
//
// Order maintains these invariants:
//   - identifiers are set once at creation and never change
//   - the timeline always starts with exactly one "Order Placed" event
//   - every status change appends exactly one timeline event with a timestamp
//     not before createdAt
//   - updatedAt is bumped on every mutation
//
// Status transitions are deliberately permissive: the store does not reject
// unusual sequences such as delivered -> created, preserving the observable
// contract callers depend on. The Tracking Progression service derives a
// display status from elapsed time, but only mutations through this aggregate
// are authoritative.
type Order struct {
	id         kernel.OrderID
	trackingID kernel.TrackingID
	details    Details

	status            Status
	timeline          Timeline
	createdAt         time.Time
	estimatedDelivery time.Time
	updatedAt         time.Time
	delayReason       string

	isConstructed bool
}

// NewOrder creates an order in Created status with its mandatory first
// timeline event and an estimated delivery a full delivery window out.
//
// Parameters:
//   - id: unique order identifier
//   - trackingID: unique tracking identifier, 1:1 with the order
//   - details: immutable business payload (validated)
//   - now: creation instant; becomes createdAt and the first event's timestamp
func NewOrder(id kernel.OrderID, trackingID kernel.TrackingID, details Details, now time.Time) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		details.validate(),
	); err != nil {
		return nil, err
	}

	placed, err := NewTimelineEvent(PlacedEventLabel, now, PlacedEventLocation)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:                id,
		trackingID:        trackingID,
		details:           details,
		status:            Created,
		timeline:          Timeline{placed},
		createdAt:         now,
		estimatedDelivery: now.Add(DefaultDeliveryWindow),
		updatedAt:         now,
		isConstructed:     true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It revalidates
// identifiers, status and the non-empty timeline so corrupted rows cannot
// produce a usable aggregate.
func RestoreOrder(
	id kernel.OrderID,
	trackingID kernel.TrackingID,
	details Details,
	status Status,
	timeline Timeline,
	createdAt time.Time,
	estimatedDelivery time.Time,
	updatedAt time.Time,
	delayReason string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		trackingID.Validate(),
		details.validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(timeline) == 0 {
		return nil, ErrTimelineIsEmpty
	}

	return &Order{
		id:                id,
		trackingID:        trackingID,
		details:           details,
		status:            status,
		timeline:          timeline.Sorted(),
		createdAt:         createdAt,
		estimatedDelivery: estimatedDelivery,
		updatedAt:         updatedAt,
		delayReason:       delayReason,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call when receiving orders from persistence or callers.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// TrackingID returns the paired tracking identifier.
func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

// Details returns the immutable business payload.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the authoritative stored status.
func (o *Order) Status() Status {
	return o.status
}

// Timeline returns a copy of the audit timeline.
func (o *Order) Timeline() Timeline {
	out := make(Timeline, len(o.timeline))
	copy(out, o.timeline)
	return out
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDelivery returns the current delivery estimate.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// UpdatedAt returns the instant of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DelayReason returns the reason recorded by the last Delay, or "".
func (o *Order) DelayReason() string {
	return o.delayReason
}

// ChangeStatus moves the order to newStatus and appends the matching timeline
// event. Location may be empty, in which case DefaultEventLocation is
// recorded. Any valid status can follow any other; callers needing stricter
// sequencing enforce it themselves.
func (o *Order) ChangeStatus(newStatus Status, location string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if location == "" {
		location = DefaultEventLocation
	}

	// Timeline timestamps never precede createdAt even if the caller's clock does.
	ts := now
	if ts.Before(o.createdAt) {
		ts = o.createdAt
	}

	event, err := NewTimelineEvent(newStatus.Label(), ts, location)
	if err != nil {
		return err
	}

	o.timeline = append(o.timeline, event)
	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Delay marks the order Delayed with the given reason and pushes the delivery
// estimate out by extension (DefaultDelayExtension when non-positive). The
// reason is recorded both on the order and as the timeline event's location,
// so the audit trail explains the hold.
func (o *Order) Delay(reason string, extension time.Duration, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if extension <= 0 {
		extension = DefaultDelayExtension
	}

	if err := o.ChangeStatus(Delayed, reason, now); err != nil {
		return err
	}

	o.delayReason = reason
	o.estimatedDelivery = o.estimatedDelivery.Add(extension)
	return nil
}

// SortTimeline restores ascending timestamp order. Appends normally keep the
// timeline sorted; this guards against races with manual updates.
func (o *Order) SortTimeline() {
	o.timeline = o.timeline.Sorted()
}
