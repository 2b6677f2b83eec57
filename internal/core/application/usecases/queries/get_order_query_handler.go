package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"logistics/internal/pkg/errs"
)

// orderColumns is the select list shared by the order read queries. The scan
// order in scanOrderRow must match it.
const orderColumns = `
	id,
	tracking_id,
	customer_id,
	customer_name,
	pickup_address,
	delivery_address,
	package_type,
	priority,
	special_instructions,
	status,
	delay_reason,
	timeline,
	created_at,
	estimated_delivery,
	updated_at
`

// timelineEventRow is the JSONB wire form of one timeline entry.
type timelineEventRow struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
}

// rowScanner abstracts sql.Row and sql.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(scanner rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var timelineRaw []byte

	err := scanner.Scan(
		&resp.ID,
		&resp.TrackingID,
		&resp.CustomerID,
		&resp.CustomerName,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.PackageType,
		&resp.Priority,
		&resp.SpecialInstructions,
		&resp.Status,
		&resp.DelayReason,
		&timelineRaw,
		&resp.CreatedAt,
		&resp.EstimatedDelivery,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	var events []timelineEventRow
	if err = json.Unmarshal(timelineRaw, &events); err != nil {
		return OrderResponse{}, err
	}

	resp.Timeline = make([]TimelineEventResponse, 0, len(events))
	for _, e := range events {
		resp.Timeline = append(resp.Timeline, TimelineEventResponse{
			Status:    e.Status,
			Timestamp: e.Timestamp,
			Location:  e.Location,
		})
	}

	return resp, nil
}

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ObjectNotFoundError when no order matches the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	return resp, nil
}
