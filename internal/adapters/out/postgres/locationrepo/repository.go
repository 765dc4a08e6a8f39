package locationrepo

import (
	"context"
	"errors"

	"laundry/internal/adapters/out/postgres/dberr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate("location", err)
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LocationDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Address", "Phone", "Email").
		Updates(&dto)
	if result.Error != nil {
		return dberr.Translate("location", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLocationRepository) Get(ctx context.Context, id kernel.ID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&LocationDTO{}, id.Int64())
	if result.Error != nil {
		return false, dberr.Translate("location", result.Error)
	}

	return result.RowsAffected > 0, nil
}
