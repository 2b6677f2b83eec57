package order

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status represents the lifecycle state of a shipment order.
//
// The stored status is authoritative and permissive: any valid status may
// follow any other. Callers that need stricter sequencing enforce it
// themselves; the store deliberately does not (documented contract, matching
// the behavior external integrations rely on).
//
// Typical progression:
//
//	Created -> PickedUp -> InTransit -> OutForDelivery -> Delivered
//	                \________ Delayed / DeliveryFailed can interleave ________/
//
// Status is a value object that provides wire-format and display
// representations for persistence and timeline rendering.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	Created

	// PickedUp indicates the package has been collected from the pickup address.
	PickedUp

	// InTransit indicates the package is moving through the delivery network.
	InTransit

	// OutForDelivery indicates the package is on the last leg to the customer.
	OutForDelivery

	// Delivered indicates the package reached the customer. Terminal.
	Delivered

	// Delayed indicates an autonomous or manual hold due to external conditions.
	Delayed

	// DeliveryFailed indicates a delivery attempt failed; redelivery follows.
	DeliveryFailed
)

// getStatusStrings returns the wire-format names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Created:        "created",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Delayed:        "delayed",
		DeliveryFailed: "delivery_failed",
	}
}

// getValidStatusStrings returns only the statuses accepted from external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:        "created",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Delayed:        "delayed",
		DeliveryFailed: "delivery_failed",
	}
}

// ParseStatus converts a wire-format string ("picked_up") into a Status.
// Returns an error for anything that is not a valid status name.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status ("out_for_delivery").
// Implements fmt.Stringer; safe on any value, returning "unknown" for
// invalid statuses.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the display form used on timeline events: underscores become
// spaces and every word is title-cased ("out_for_delivery" -> "Out For Delivery").
func (s Status) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(s.String(), "_", " "))
}

// IsTerminal reports whether the status ends the delivery lifecycle.
// Delivered is the only terminal state; DeliveryFailed is followed by a
// redelivery attempt and Delayed resumes once the hold clears.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
