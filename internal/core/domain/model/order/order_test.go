package order_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) order.Details {
	t.Helper()

	pickup, err := kernel.NewLocation("123 Warehouse Rd, Newark")
	require.NoError(t, err)
	delivery, err := kernel.NewLocation("456 Oak Avenue, Brooklyn")
	require.NoError(t, err)

	return order.Details{
		CustomerID:      "CUST-1001",
		CustomerName:    "Dana Whitfield",
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PackageType:     "electronics",
		Priority:        order.PriorityExpress,
	}
}

func newTestOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), validDetails(t), now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Now()

	t.Run("creates_order_with_placed_event", func(t *testing.T) {
		o := newTestOrder(t, now)

		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Equal(t, now.Add(order.DefaultDeliveryWindow), o.EstimatedDelivery())

		timeline := o.Timeline()
		require.Len(t, timeline, 1)
		assert.Equal(t, order.PlacedEventLabel, timeline[0].Label())
		assert.Equal(t, order.PlacedEventLocation, timeline[0].Location())
		assert.Equal(t, now, timeline[0].Timestamp())
	})

	t.Run("defaults_priority_to_standard", func(t *testing.T) {
		details := validDetails(t)
		details.Priority = ""

		o, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), details, now)

		require.NoError(t, err)
		assert.Equal(t, order.PriorityStandard, o.Details().Priority)
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		_, err := order.NewOrder(kernel.OrderID{}, kernel.NewTrackingID(), validDetails(t), now)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewOrderID(), kernel.TrackingID{}, validDetails(t), now)
		require.Error(t, err)
	})

	t.Run("rejects_incomplete_details", func(t *testing.T) {
		details := validDetails(t)
		details.CustomerID = ""
		_, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), details, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		details = validDetails(t)
		details.DeliveryAddress = kernel.Location{}
		_, err = order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), details, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		details = validDetails(t)
		details.Priority = "ludicrous"
		_, err = order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), details, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed_order_is_valid", func(t *testing.T) {
		o := newTestOrder(t, time.Now())
		require.NoError(t, o.Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Now()

	t.Run("appends_exactly_one_event", func(t *testing.T) {
		o := newTestOrder(t, now)
		later := now.Add(30 * time.Minute)

		err := o.ChangeStatus(order.PickedUp, "Pickup Location", later)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, o.Status())
		assert.Equal(t, later, o.UpdatedAt())

		timeline := o.Timeline()
		require.Len(t, timeline, 2)
		assert.Equal(t, "Picked Up", timeline[1].Label())
		assert.Equal(t, "Pickup Location", timeline[1].Location())
		assert.True(t, timeline.IsOrdered())
	})

	t.Run("defaults_location_when_empty", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.NoError(t, o.ChangeStatus(order.InTransit, "", now.Add(time.Hour)))

		timeline := o.Timeline()
		assert.Equal(t, order.DefaultEventLocation, timeline[len(timeline)-1].Location())
	})

	t.Run("clamps_timestamps_before_creation", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.NoError(t, o.ChangeStatus(order.PickedUp, "x", now.Add(-time.Hour)))

		timeline := o.Timeline()
		assert.Equal(t, now, timeline[len(timeline)-1].Timestamp())
		assert.True(t, timeline.IsOrdered())
	})

	t.Run("permissive_transitions", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.NoError(t, o.ChangeStatus(order.Delivered, "Front Door", now.Add(time.Hour)))
		// delivered -> created is allowed by documented contract
		require.NoError(t, o.ChangeStatus(order.Created, "", now.Add(2*time.Hour)))
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.Error(t, o.ChangeStatus(order.Unknown, "", now))
		require.Len(t, o.Timeline(), 1)
	})
}

func TestOrder_Delay(t *testing.T) {
	now := time.Now()

	t.Run("records_reason_and_extends_estimate", func(t *testing.T) {
		o := newTestOrder(t, now)
		before := o.EstimatedDelivery()

		err := o.Delay("weather_delay", 4*time.Hour, now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.Delayed, o.Status())
		assert.Equal(t, "weather_delay", o.DelayReason())
		assert.Equal(t, before.Add(4*time.Hour), o.EstimatedDelivery())

		timeline := o.Timeline()
		assert.Equal(t, "Delayed", timeline[len(timeline)-1].Label())
		assert.Equal(t, "weather_delay", timeline[len(timeline)-1].Location())
	})

	t.Run("defaults_extension", func(t *testing.T) {
		o := newTestOrder(t, now)
		before := o.EstimatedDelivery()

		require.NoError(t, o.Delay("traffic_delay", 0, now))

		assert.Equal(t, before.Add(order.DefaultDelayExtension), o.EstimatedDelivery())
	})

	t.Run("requires_reason", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.ErrorIs(t, o.Delay("", time.Hour, now), errs.ErrValueIsRequired)
	})
}

func TestOrder_SortTimeline(t *testing.T) {
	now := time.Now()
	o := newTestOrder(t, now)

	// Appends at descending instants; clamping keeps them >= createdAt but the
	// sequence is still unordered relative to each other.
	require.NoError(t, o.ChangeStatus(order.InTransit, "B", now.Add(2*time.Hour)))
	require.NoError(t, o.ChangeStatus(order.PickedUp, "A", now.Add(time.Hour)))
	require.False(t, o.Timeline().IsOrdered())

	o.SortTimeline()

	assert.True(t, o.Timeline().IsOrdered())
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("round_trips_aggregate_state", func(t *testing.T) {
		original := newTestOrder(t, now)
		require.NoError(t, original.ChangeStatus(order.PickedUp, "Pickup Location", now.Add(time.Minute)))

		restored, err := order.RestoreOrder(
			original.ID(),
			original.TrackingID(),
			original.Details(),
			original.Status(),
			original.Timeline(),
			original.CreatedAt(),
			original.EstimatedDelivery(),
			original.UpdatedAt(),
			original.DelayReason(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		assert.Len(t, restored.Timeline(), 2)
	})

	t.Run("rejects_empty_timeline", func(t *testing.T) {
		o := newTestOrder(t, now)

		_, err := order.RestoreOrder(
			o.ID(), o.TrackingID(), o.Details(), o.Status(),
			order.Timeline{}, o.CreatedAt(), o.EstimatedDelivery(), o.UpdatedAt(), "",
		)

		require.ErrorIs(t, err, order.ErrTimelineIsEmpty)
	})
}
