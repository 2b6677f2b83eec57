package trackingrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tracking record to the database.
func (r *GormTrackingRepository) Add(ctx context.Context, record *tracking.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.TrackingID().String(), record)
	return nil
}

// Update saves an existing tracking record to the database.
func (r *GormTrackingRepository) Update(ctx context.Context, record *tracking.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&TrackingRecordDTO{}).
		Where("tracking_id = ?", dto.TrackingID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.TrackingID().String(), record)
	return nil
}

// Get retrieves a tracking record by tracking number.
func (r *GormTrackingRepository) Get(ctx context.Context, id kernel.TrackingID) (*tracking.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the tracking record projecting an order.
func (r *GormTrackingRepository) GetByOrderID(ctx context.Context, id kernel.OrderID) (*tracking.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
