package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery retrieves the customer-facing tracking view for a tracking
// number. The handler runs the time-based progression over the stored state
// before returning, so the response may show a later display status than the
// store holds; nothing is written back.
type GetTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a query to retrieve one tracking view.
func NewGetTrackingQuery(trackingID kernel.TrackingID) (GetTrackingQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackingQueryIsNotConstructed if validation fails.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// TrackingID returns the tracking number to look up.
func (q GetTrackingQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// CoordinatesResponse is an optional lat/lng pair in the read model.
type CoordinatesResponse struct {
	Lat float64
	Lng float64
}

// GetTrackingQueryResponse is the assembled tracking view: stored projection
// merged with time-derived progress.
type GetTrackingQueryResponse struct {
	TrackingID        string
	OrderID           string
	Status            string
	CurrentLocation   string
	Coordinates       *CoordinatesResponse
	EstimatedDelivery time.Time
	Timeline          []TimelineEventResponse
}
