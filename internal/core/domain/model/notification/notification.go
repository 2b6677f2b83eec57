package notification

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Type is the closed set of customer notifications. Adding a type means
// extending the renderer switches below, so an unhandled case is caught at
// review time instead of silently falling back at runtime.
type Type string

const (
	TypeOrderCreated    Type = "order_created"
	TypeOrderPickedUp   Type = "order_picked_up"
	TypeInTransit       Type = "in_transit"
	TypeOutForDelivery  Type = "out_for_delivery"
	TypeDelivered       Type = "delivered"
	TypeDeliveryDelayed Type = "delivery_delayed"
	TypeDeliveryFailed  Type = "delivery_failed"
)

// ParseType converts a wire-format string into a Type. Unknown strings are an
// error; callers that want the generic fallback message use the type as-is and
// let Message handle it.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeOrderCreated, TypeOrderPickedUp, TypeInTransit, TypeOutForDelivery,
		TypeDelivered, TypeDeliveryDelayed, TypeDeliveryFailed:
		return Type(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("notificationType",
			fmt.Errorf("%q is not a known notification type", s))
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// TemplateData carries the per-notification values substituted into message
// templates. Only the fields relevant to the type need to be set.
type TemplateData struct {
	EstimatedDelivery    string
	NewEstimatedDelivery string
	TrackingURL          string
	CurrentLocation      string
	Reason               string
	Message              string
}

// Message renders the customer-facing text for the notification. Types
// outside the closed set fall back to a generic status update so a message is
// always produced.
func (t Type) Message(orderID kernel.OrderID, data TemplateData) string {
	switch t {
	case TypeOrderCreated:
		return fmt.Sprintf("Your order %s has been created and is being processed. Estimated delivery: %s",
			orderID, data.EstimatedDelivery)
	case TypeOrderPickedUp:
		return fmt.Sprintf("Your order %s has been picked up and is on its way. Track your package: %s",
			orderID, data.TrackingURL)
	case TypeInTransit:
		return fmt.Sprintf("Your order %s is in transit. Current location: %s. Expected delivery: %s",
			orderID, data.CurrentLocation, data.EstimatedDelivery)
	case TypeOutForDelivery:
		return fmt.Sprintf("Your order %s is out for delivery. It will arrive within the next 2 hours.", orderID)
	case TypeDelivered:
		return fmt.Sprintf("Your order %s has been successfully delivered. Thank you for choosing our service!",
			orderID)
	case TypeDeliveryDelayed:
		return fmt.Sprintf("Your order %s delivery has been delayed due to %s. New estimated delivery: %s",
			orderID, data.Reason, data.NewEstimatedDelivery)
	case TypeDeliveryFailed:
		return fmt.Sprintf("We were unable to deliver your order %s. Reason: %s. We will attempt redelivery tomorrow.",
			orderID, data.Reason)
	default:
		if data.Message != "" {
			return fmt.Sprintf("Update for order %s: %s", orderID, data.Message)
		}
		return fmt.Sprintf("Update for order %s: Status updated", orderID)
	}
}

// Subject renders the email subject line for the notification.
func (t Type) Subject() string {
	switch t {
	case TypeOrderCreated:
		return "Order Confirmation - Smart Logistics"
	case TypeOrderPickedUp:
		return "Order Picked Up - Smart Logistics"
	case TypeInTransit:
		return "Order In Transit - Smart Logistics"
	case TypeOutForDelivery:
		return "Order Out for Delivery - Smart Logistics"
	case TypeDelivered:
		return "Order Delivered - Smart Logistics"
	case TypeDeliveryDelayed:
		return "Delivery Delayed - Smart Logistics"
	case TypeDeliveryFailed:
		return "Delivery Failed - Smart Logistics"
	default:
		return "Order Update - Smart Logistics"
	}
}
