// Package trackingrepo persists tracking record projections.
package trackingrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tracking"
)

// TrackingRecordDTO represents the database structure for tracking records.
// Coordinates are nullable: locations reported as bare addresses carry none.
type TrackingRecordDTO struct {
	TrackingID     string `gorm:"primaryKey"`
	OrderID        string `gorm:"uniqueIndex"`
	CurrentAddress string
	CurrentLat     *float64
	CurrentLng     *float64
	Status         string
}

// TableName specifies the database table name for tracking records.
func (TrackingRecordDTO) TableName() string {
	return "tracking_records"
}

func fromDomain(record *tracking.Record) TrackingRecordDTO {
	dto := TrackingRecordDTO{
		TrackingID:     record.TrackingID().String(),
		OrderID:        record.OrderID().String(),
		CurrentAddress: record.CurrentLocation().Address(),
		Status:         record.Status().String(),
	}

	if coords, ok := record.CurrentLocation().Coordinates(); ok {
		dto.CurrentLat = &coords.Lat
		dto.CurrentLng = &coords.Lng
	}

	return dto
}

func toDomain(dto TrackingRecordDTO) (*tracking.Record, error) {
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var location kernel.Location
	if dto.CurrentLat != nil && dto.CurrentLng != nil {
		location, err = kernel.NewLocationWithCoordinates(dto.CurrentAddress, *dto.CurrentLat, *dto.CurrentLng)
	} else {
		location, err = kernel.NewLocation(dto.CurrentAddress)
	}
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreRecord(trackingID, orderID, location, status)
}
