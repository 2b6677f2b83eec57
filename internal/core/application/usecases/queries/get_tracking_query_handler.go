package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// GetTrackingQueryHandler assembles the tracking view for a tracking number.
// Unlike the other read handlers it restores full domain objects, because the
// progression service operates on the aggregate, not on raw rows.
type GetTrackingQueryHandler struct {
	db          *gorm.DB
	progression services.TrackingProgression
}

// NewGetTrackingQueryHandler creates a handler for tracking lookups.
func NewGetTrackingQueryHandler(db *gorm.DB, progression services.TrackingProgression) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{db: db, progression: progression}
}

// Handle executes the tracking lookup.
// Returns errs.ObjectNotFoundError when the tracking number is unknown.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	aggregate, err := h.loadOrder(ctx, query.TrackingID())
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	record, err := h.loadRecord(ctx, query.TrackingID())
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	snapshot, err := h.progression.Project(aggregate, record, time.Now())
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	return toTrackingResponse(snapshot), nil
}

func (h *GetTrackingQueryHandler) loadOrder(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*order.Order, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE tracking_id = ?
	`, trackingID.String()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
		}
		return nil, err
	}

	return restoreOrder(resp)
}

func (h *GetTrackingQueryHandler) loadRecord(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*tracking.Record, error) {
	var (
		orderIDRaw string
		address    string
		lat, lng   sql.NullFloat64
		statusRaw  string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT order_id, current_address, current_lat, current_lng, status
		FROM tracking_records
		WHERE tracking_id = ?
	`, trackingID.String()).Row()

	if err := row.Scan(&orderIDRaw, &address, &lat, &lng, &statusRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
		}
		return nil, err
	}

	orderID, err := kernel.OrderIDFromString(orderIDRaw)
	if err != nil {
		return nil, err
	}

	var location kernel.Location
	if lat.Valid && lng.Valid {
		location, err = kernel.NewLocationWithCoordinates(address, lat.Float64, lng.Float64)
	} else {
		location, err = kernel.NewLocation(address)
	}
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(statusRaw)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreRecord(trackingID, orderID, location, status)
}

// restoreOrder rebuilds the aggregate from a read-model row so the progression
// service can run over it.
func restoreOrder(resp OrderResponse) (*order.Order, error) {
	orderID, err := kernel.OrderIDFromString(resp.ID)
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(resp.TrackingID)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(resp.PickupAddress)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewLocation(resp.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(resp.Status)
	if err != nil {
		return nil, err
	}

	timeline := make(order.Timeline, 0, len(resp.Timeline))
	for _, e := range resp.Timeline {
		event, eventErr := order.NewTimelineEvent(e.Status, e.Timestamp, e.Location)
		if eventErr != nil {
			return nil, eventErr
		}
		timeline = append(timeline, event)
	}

	return order.RestoreOrder(
		orderID,
		trackingID,
		order.Details{
			CustomerID:          resp.CustomerID,
			CustomerName:        resp.CustomerName,
			PickupAddress:       pickup,
			DeliveryAddress:     delivery,
			PackageType:         resp.PackageType,
			Priority:            order.Priority(resp.Priority),
			SpecialInstructions: resp.SpecialInstructions,
		},
		status,
		timeline,
		resp.CreatedAt,
		resp.EstimatedDelivery,
		resp.UpdatedAt,
		resp.DelayReason,
	)
}

func toTrackingResponse(snapshot tracking.Snapshot) GetTrackingQueryResponse {
	resp := GetTrackingQueryResponse{
		TrackingID:        snapshot.TrackingID.String(),
		OrderID:           snapshot.OrderID.String(),
		Status:            snapshot.Status.String(),
		CurrentLocation:   snapshot.CurrentLocation.Address(),
		EstimatedDelivery: snapshot.EstimatedDelivery,
		Timeline:          make([]TimelineEventResponse, 0, len(snapshot.Timeline)),
	}

	if coords, ok := snapshot.CurrentLocation.Coordinates(); ok {
		resp.Coordinates = &CoordinatesResponse{Lat: coords.Lat, Lng: coords.Lng}
	}

	for _, e := range snapshot.Timeline {
		resp.Timeline = append(resp.Timeline, TimelineEventResponse{
			Status:    e.Label(),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
		})
	}

	return resp
}
