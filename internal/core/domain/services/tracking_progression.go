package services

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tracking"
)

// Default progression thresholds. Compressed for demonstration deployments;
// tune per deployment through NewTrackingProgressionWithThresholds.
const (
	// DefaultPickedUpAfter is the elapsed time after which a package counts
	// as picked up when no authoritative progress was reported.
	DefaultPickedUpAfter = 6 * time.Minute

	// DefaultInTransitAfter is the elapsed time after which a package counts
	// as in transit when no authoritative progress was reported.
	DefaultInTransitAfter = 12 * time.Minute
)

// Derived-progress waypoints of the simulated delivery network.
const (
	PickupLocationAddress  = "Pickup Location"
	TransitLocationAddress = "Distribution Center - Manhattan"
)

func pickupLocation() kernel.Location {
	loc, _ := kernel.NewLocationWithCoordinates(PickupLocationAddress, 40.7589, -73.9851)
	return loc
}

func transitLocation() kernel.Location {
	loc, _ := kernel.NewLocationWithCoordinates(TransitLocationAddress, 40.7282, -73.7949)
	return loc
}

// TrackingProgression derives a shipment's display progress from wall-clock
// time elapsed since order creation. It is a pure domain service: given the
// same order state and the same instant it always produces the same snapshot,
// and it never mutates the authoritative aggregate.
//
// Rules:
//   - derivation applies only while the stored status is Created or PickedUp;
//     any authoritative progress beyond that (delivery, delay, failure)
//     suppresses time-based advancement entirely
//   - the derived status never regresses behind the stored status
//   - derived timeline events ("Picked Up", "In Transit") are appended to the
//     snapshot exactly once, timestamped at createdAt plus the threshold
//   - the snapshot timeline is sorted ascending before returning
//
// Example:
//
//	progression := services.NewTrackingProgression()
//	snap, err := progression.Project(o, rec, time.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(snap.Status) // in_transit once 12 minutes have passed
type TrackingProgression struct {
	pickedUpAfter  time.Duration
	inTransitAfter time.Duration
}

// NewTrackingProgression creates a progression service with the default
// thresholds.
func NewTrackingProgression() TrackingProgression {
	return TrackingProgression{
		pickedUpAfter:  DefaultPickedUpAfter,
		inTransitAfter: DefaultInTransitAfter,
	}
}

// NewTrackingProgressionWithThresholds creates a progression service with
// deployment-specific thresholds. inTransitAfter should exceed pickedUpAfter;
// values are used as given.
func NewTrackingProgressionWithThresholds(pickedUpAfter, inTransitAfter time.Duration) TrackingProgression {
	return TrackingProgression{
		pickedUpAfter:  pickedUpAfter,
		inTransitAfter: inTransitAfter,
	}
}

// Project assembles the customer-facing tracking snapshot for an order and its
// stored projection at the given instant. Calling Project twice with the same
// now yields identical snapshots (idempotence).
func (p TrackingProgression) Project(
	o *order.Order,
	rec *tracking.Record,
	now time.Time,
) (tracking.Snapshot, error) {
	if err := o.Validate(); err != nil {
		return tracking.Snapshot{}, err
	}
	if err := rec.Validate(); err != nil {
		return tracking.Snapshot{}, err
	}

	status := o.Status()
	location := rec.CurrentLocation()
	timeline := o.Timeline()
	elapsed := now.Sub(o.CreatedAt())

	if p.derivable(status) {
		if elapsed >= p.pickedUpAfter {
			timeline = appendDerived(timeline, order.PickedUp.Label(),
				o.CreatedAt().Add(p.pickedUpAfter), PickupLocationAddress)
			if status == order.Created {
				status = order.PickedUp
				location = pickupLocation()
			}
		}

		if elapsed >= p.inTransitAfter {
			timeline = appendDerived(timeline, order.InTransit.Label(),
				o.CreatedAt().Add(p.inTransitAfter), TransitLocationAddress)
			status = order.InTransit
			location = transitLocation()
		}
	}

	return tracking.Snapshot{
		TrackingID:        rec.TrackingID(),
		OrderID:           o.ID(),
		Status:            status,
		CurrentLocation:   location,
		EstimatedDelivery: o.EstimatedDelivery(),
		Timeline:          timeline.Sorted(),
	}, nil
}

// derivable reports whether time-based derivation may advance the status.
func (p TrackingProgression) derivable(s order.Status) bool {
	return s == order.Created || s == order.PickedUp
}

// appendDerived appends a derived event unless an event with the same label
// already exists, keeping projection idempotent under repeated reads.
func appendDerived(t order.Timeline, label string, ts time.Time, loc string) order.Timeline {
	if t.Contains(label) {
		return t
	}

	event, err := order.NewTimelineEvent(label, ts, loc)
	if err != nil {
		return t
	}
	return append(t, event)
}
