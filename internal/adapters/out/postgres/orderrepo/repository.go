package orderrepo

import (
	"context"
	"errors"

	"laundry/internal/adapters/out/postgres/dberr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker lets the unit of work clear pending history after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its pending history rows in one transaction
// (a savepoint when the unit of work already opened one) and assigns the order identity.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}

		return insertHistory(tx, kernel.ID(dto.ID), aggregate.PendingChanges())
	})
	if err != nil {
		return dberr.Translate("order", err)
	}

	if err = aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status, pickup details and pending history rows in one transaction.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("Status", "PickupDate", "PickupTime", "SpecialInstructions").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}

		return insertHistory(tx, aggregate.ID(), aggregate.PendingChanges())
	})
	if err != nil {
		return dberr.Translate("order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order. Its history rows go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, id.Int64())
	if result.Error != nil {
		return false, dberr.Translate("order", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func insertHistory(tx *gorm.DB, orderID kernel.ID, changes []order.StatusChange) error {
	if len(changes) == 0 {
		return nil
	}

	rows := historyFromDomain(orderID, changes)
	return tx.Create(&rows).Error
}
