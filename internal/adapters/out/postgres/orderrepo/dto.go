// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The timeline is stored as a JSONB document: it is append-only, always read
// and written whole, and never queried per event.
type OrderDTO struct {
	ID                  string `gorm:"primaryKey"`
	TrackingID          string `gorm:"uniqueIndex"`
	CustomerID          string `gorm:"index"`
	CustomerName        string
	PickupAddress       string
	DeliveryAddress     string
	PackageType         string
	Priority            string
	SpecialInstructions string
	Status              string `gorm:"index"`
	DelayReason         string
	Timeline            string    `gorm:"type:jsonb"`
	CreatedAt           time.Time `gorm:"autoCreateTime:false"`
	EstimatedDelivery   time.Time
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// timelineEventDTO is the JSONB wire form of one timeline entry.
type timelineEventDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	events := make([]timelineEventDTO, 0, len(aggregate.Timeline()))
	for _, e := range aggregate.Timeline() {
		events = append(events, timelineEventDTO{
			Status:    e.Label(),
			Timestamp: e.Timestamp(),
			Location:  e.Location(),
		})
	}

	timelineRaw, err := json.Marshal(events)
	if err != nil {
		return OrderDTO{}, err
	}

	details := aggregate.Details()
	return OrderDTO{
		ID:                  aggregate.ID().String(),
		TrackingID:          aggregate.TrackingID().String(),
		CustomerID:          details.CustomerID,
		CustomerName:        details.CustomerName,
		PickupAddress:       details.PickupAddress.Address(),
		DeliveryAddress:     details.DeliveryAddress.Address(),
		PackageType:         details.PackageType,
		Priority:            string(details.Priority),
		SpecialInstructions: details.SpecialInstructions,
		Status:              aggregate.Status().String(),
		DelayReason:         aggregate.DelayReason(),
		Timeline:            string(timelineRaw),
		CreatedAt:           aggregate.CreatedAt(),
		EstimatedDelivery:   aggregate.EstimatedDelivery(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the timeline using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.PickupAddress)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewLocation(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var events []timelineEventDTO
	if err = json.Unmarshal([]byte(dto.Timeline), &events); err != nil {
		return nil, err
	}

	timeline := make(order.Timeline, 0, len(events))
	for _, e := range events {
		event, eventErr := order.NewTimelineEvent(e.Status, e.Timestamp, e.Location)
		if eventErr != nil {
			return nil, eventErr
		}
		timeline = append(timeline, event)
	}

	return order.RestoreOrder(
		id,
		trackingID,
		order.Details{
			CustomerID:          dto.CustomerID,
			CustomerName:        dto.CustomerName,
			PickupAddress:       pickup,
			DeliveryAddress:     delivery,
			PackageType:         dto.PackageType,
			Priority:            order.Priority(dto.Priority),
			SpecialInstructions: dto.SpecialInstructions,
		},
		status,
		timeline,
		dto.CreatedAt,
		dto.EstimatedDelivery,
		dto.UpdatedAt,
		dto.DelayReason,
	)
}
