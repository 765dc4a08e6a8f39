package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetLocationQueryIsNotConstructed = errors.New(
		"GetLocationQuery must be created via NewGetLocationQuery constructor",
	)
	ErrListLocationsQueryIsNotConstructed = errors.New(
		"ListLocationsQuery must be created via NewListLocationsQuery constructor",
	)
)

const locationColumns = "id, name, address, phone, email, created_at"

type GetLocationQuery struct {
	locationID kernel.ID
	guard      guard.ConstructorGuard
}

func NewGetLocationQuery(locationID kernel.ID) (GetLocationQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetLocationQuery{}, err
	}
	return GetLocationQuery{locationID: locationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationQueryIsNotConstructed)
}

type GetLocationQueryHandler struct {
	db *gorm.DB
}

func NewGetLocationQueryHandler(db *gorm.DB) GetLocationQueryHandler {
	return GetLocationQueryHandler{db: db}
}

func (h GetLocationQueryHandler) Handle(ctx context.Context, query GetLocationQuery) (LocationView, error) {
	if err := query.Validate(); err != nil {
		return LocationView{}, err
	}

	var view LocationView
	result := h.db.WithContext(ctx).Table("locations").
		Select(locationColumns).
		Where("id = ?", query.locationID.Int64()).
		Limit(1).
		Scan(&view)
	if result.Error != nil {
		return LocationView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return LocationView{}, errs.NewObjectNotFoundError("location", query.locationID.Int64())
	}

	return view, nil
}

type ListLocationsQuery struct {
	guard guard.ConstructorGuard
}

func NewListLocationsQuery() ListLocationsQuery {
	return ListLocationsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListLocationsQueryIsNotConstructed)
}

type ListLocationsQueryHandler struct {
	db *gorm.DB
}

func NewListLocationsQueryHandler(db *gorm.DB) ListLocationsQueryHandler {
	return ListLocationsQueryHandler{db: db}
}

func (h ListLocationsQueryHandler) Handle(ctx context.Context, query ListLocationsQuery) ([]LocationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]LocationView, 0)
	if err := h.db.WithContext(ctx).Table("locations").Select(locationColumns).Order("id").Scan(&views).Error; err != nil {
		return nil, err
	}

	return views, nil
}
