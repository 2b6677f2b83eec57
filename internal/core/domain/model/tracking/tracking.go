package tracking

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through the NewRecord or RestoreRecord factory methods.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

// InitialLocationAddress is where every new shipment starts.
const InitialLocationAddress = "Processing Center"

// initialLocation returns the starting point of every shipment. The
// coordinates are those of the central processing facility.
func initialLocation() kernel.Location {
	loc, _ := kernel.NewLocationWithCoordinates(InitialLocationAddress, 40.7128, -74.0060)
	return loc
}

// Record is the read projection of an order's position in the delivery
// network, keyed by tracking identifier. The Order aggregate remains the
// source of truth; a Record mirrors its status and is refreshed on reads and
// on dispatcher mutations. Records are created atomically with their order and
// never deleted.
type Record struct {
	trackingID      kernel.TrackingID
	orderID         kernel.OrderID
	currentLocation kernel.Location
	status          order.Status

	isConstructed bool
}

// NewRecord creates the projection for a freshly placed order. The package
// starts at the processing center mirroring the order's Created status.
func NewRecord(o *order.Order) (*Record, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Record{
		trackingID:      o.TrackingID(),
		orderID:         o.ID(),
		currentLocation: initialLocation(),
		status:          o.Status(),
		isConstructed:   true,
	}, nil
}

// RestoreRecord reconstructs a projection from persistence.
func RestoreRecord(
	trackingID kernel.TrackingID,
	orderID kernel.OrderID,
	currentLocation kernel.Location,
	status order.Status,
) (*Record, error) {
	if err := errors.Join(
		trackingID.Validate(),
		orderID.Validate(),
		currentLocation.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Record{
		trackingID:      trackingID,
		orderID:         orderID,
		currentLocation: currentLocation,
		status:          status,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Record was properly constructed through a factory method.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// TrackingID returns the projection's key.
func (r *Record) TrackingID() kernel.TrackingID {
	return r.trackingID
}

// OrderID returns the back-reference to the owning order.
func (r *Record) OrderID() kernel.OrderID {
	return r.orderID
}

// CurrentLocation returns the package's last known position.
func (r *Record) CurrentLocation() kernel.Location {
	return r.currentLocation
}

// Status returns the mirrored order status.
func (r *Record) Status() order.Status {
	return r.status
}

// Refresh mirrors the order's authoritative status into the projection and,
// when newLocation is non-nil, moves the package there.
func (r *Record) Refresh(o *order.Order, newLocation *kernel.Location) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !r.orderID.IsEqual(o.ID()) {
		return errors.New("record does not project the given order")
	}

	r.status = o.Status()
	if newLocation != nil {
		if err := newLocation.Validate(); err != nil {
			return err
		}
		r.currentLocation = *newLocation
	}
	return nil
}

// Snapshot is the customer-facing tracking view assembled at read time: the
// stored projection merged with time-derived progress from the Tracking
// Progression service. Snapshot is a plain read model, not an aggregate.
type Snapshot struct {
	TrackingID        kernel.TrackingID
	OrderID           kernel.OrderID
	Status            order.Status
	CurrentLocation   kernel.Location
	EstimatedDelivery time.Time
	Timeline          order.Timeline
}
