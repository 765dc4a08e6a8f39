package servicerepo

import (
	"context"
	"errors"

	"laundry/internal/adapters/out/postgres/dberr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceRepository implements ports.ServiceRepository using GORM.
type GormServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceRepository {
	return &GormServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the service. A taken name surfaces as a ConstraintViolationError.
func (r *GormServiceRepository) Add(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate("service", err)
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormServiceRepository) Update(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ServiceDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Description", "PricePerUnit", "Unit").
		Updates(&dto)
	if result.Error != nil {
		return dberr.Translate("service", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("service", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormServiceRepository) Get(ctx context.Context, id kernel.ID) (*service.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an unreferenced service. The orders foreign key is ON DELETE RESTRICT,
// so a service with orders fails with a ConstraintViolationError.
func (r *GormServiceRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&ServiceDTO{}, id.Int64())
	if result.Error != nil {
		return false, dberr.Translate("service", result.Error)
	}

	return result.RowsAffected > 0, nil
}
