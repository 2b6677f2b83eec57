package tracking_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	pickup, err := kernel.NewLocation("Warehouse 12, Newark")
	require.NoError(t, err)
	delivery, err := kernel.NewLocation("789 Pine St, Manhattan")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), order.Details{
		CustomerID:      "CUST-7",
		CustomerName:    "Avery Moss",
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PackageType:     "documents",
	}, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewRecord(t *testing.T) {
	t.Run("projects_fresh_order", func(t *testing.T) {
		o := newTestOrder(t)

		rec, err := tracking.NewRecord(o)

		require.NoError(t, err)
		require.NoError(t, rec.Validate())
		assert.True(t, rec.TrackingID().IsEqual(o.TrackingID()))
		assert.True(t, rec.OrderID().IsEqual(o.ID()))
		assert.Equal(t, order.Created, rec.Status())
		assert.Equal(t, tracking.InitialLocationAddress, rec.CurrentLocation().Address())

		coords, ok := rec.CurrentLocation().Coordinates()
		require.True(t, ok)
		assert.InDelta(t, 40.7128, coords.Lat, 0.0001)
	})

	t.Run("rejects_unconstructed_order", func(t *testing.T) {
		_, err := tracking.NewRecord(&order.Order{})
		require.Error(t, err)
	})
}

func TestRecord_Validate(t *testing.T) {
	var rec tracking.Record
	require.ErrorIs(t, rec.Validate(), tracking.ErrRecordIsNotConstructed)

	var nilRec *tracking.Record
	require.ErrorIs(t, nilRec.Validate(), tracking.ErrRecordIsNotConstructed)
}

func TestRecord_Refresh(t *testing.T) {
	t.Run("mirrors_status_and_moves_package", func(t *testing.T) {
		o := newTestOrder(t)
		rec, err := tracking.NewRecord(o)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.InTransit, "Distribution Center - Manhattan", time.Now()))
		loc, err := kernel.NewLocation("Distribution Center - Manhattan")
		require.NoError(t, err)

		require.NoError(t, rec.Refresh(o, &loc))

		assert.Equal(t, order.InTransit, rec.Status())
		assert.Equal(t, "Distribution Center - Manhattan", rec.CurrentLocation().Address())
	})

	t.Run("keeps_location_when_none_given", func(t *testing.T) {
		o := newTestOrder(t)
		rec, err := tracking.NewRecord(o)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Delayed, "weather_delay", time.Now()))
		require.NoError(t, rec.Refresh(o, nil))

		assert.Equal(t, order.Delayed, rec.Status())
		assert.Equal(t, tracking.InitialLocationAddress, rec.CurrentLocation().Address())
	})

	t.Run("rejects_foreign_order", func(t *testing.T) {
		rec, err := tracking.NewRecord(newTestOrder(t))
		require.NoError(t, err)

		require.Error(t, rec.Refresh(newTestOrder(t), nil))
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("round_trips", func(t *testing.T) {
		o := newTestOrder(t)
		rec, err := tracking.NewRecord(o)
		require.NoError(t, err)

		restored, err := tracking.RestoreRecord(
			rec.TrackingID(), rec.OrderID(), rec.CurrentLocation(), rec.Status(),
		)

		require.NoError(t, err)
		assert.Equal(t, rec.Status(), restored.Status())
		assert.True(t, rec.TrackingID().IsEqual(restored.TrackingID()))
	})

	t.Run("rejects_invalid_parts", func(t *testing.T) {
		o := newTestOrder(t)
		rec, _ := tracking.NewRecord(o)

		_, err := tracking.RestoreRecord(kernel.TrackingID{}, rec.OrderID(), rec.CurrentLocation(), rec.Status())
		require.Error(t, err)

		_, err = tracking.RestoreRecord(rec.TrackingID(), rec.OrderID(), kernel.Location{}, rec.Status())
		require.Error(t, err)
	})
}
