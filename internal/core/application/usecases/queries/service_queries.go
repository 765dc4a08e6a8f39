package queries

import (
	"context"
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetServiceQueryIsNotConstructed = errors.New(
		"GetServiceQuery must be created via NewGetServiceQuery constructor",
	)
	ErrFindServiceByNameQueryIsNotConstructed = errors.New(
		"FindServiceByNameQuery must be created via NewFindServiceByNameQuery constructor",
	)
	ErrListServicesQueryIsNotConstructed = errors.New(
		"ListServicesQuery must be created via NewListServicesQuery constructor",
	)
)

const serviceColumns = "id, name, description, price_per_unit, unit, created_at"

type GetServiceQuery struct {
	serviceID kernel.ID
	guard     guard.ConstructorGuard
}

func NewGetServiceQuery(serviceID kernel.ID) (GetServiceQuery, error) {
	if err := serviceID.Validate(); err != nil {
		return GetServiceQuery{}, err
	}
	return GetServiceQuery{serviceID: serviceID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetServiceQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceQueryIsNotConstructed)
}

type GetServiceQueryHandler struct {
	db *gorm.DB
}

func NewGetServiceQueryHandler(db *gorm.DB) GetServiceQueryHandler {
	return GetServiceQueryHandler{db: db}
}

func (h GetServiceQueryHandler) Handle(ctx context.Context, query GetServiceQuery) (ServiceView, error) {
	if err := query.Validate(); err != nil {
		return ServiceView{}, err
	}

	return findService(ctx, h.db, "service", query.serviceID.Int64(), "id = ?", query.serviceID.Int64())
}

// FindServiceByNameQuery looks a service up by its unique name. The match is exact.
type FindServiceByNameQuery struct {
	name  string
	guard guard.ConstructorGuard
}

func NewFindServiceByNameQuery(name string) (FindServiceByNameQuery, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return FindServiceByNameQuery{}, errs.NewValueIsRequiredError("service name")
	}
	return FindServiceByNameQuery{name: trimmed, guard: guard.NewConstructorGuard()}, nil
}

func (q FindServiceByNameQuery) Validate() error {
	return q.guard.Validate(ErrFindServiceByNameQueryIsNotConstructed)
}

type FindServiceByNameQueryHandler struct {
	db *gorm.DB
}

func NewFindServiceByNameQueryHandler(db *gorm.DB) FindServiceByNameQueryHandler {
	return FindServiceByNameQueryHandler{db: db}
}

func (h FindServiceByNameQueryHandler) Handle(ctx context.Context, query FindServiceByNameQuery) (ServiceView, error) {
	if err := query.Validate(); err != nil {
		return ServiceView{}, err
	}

	return findService(ctx, h.db, "service", query.name, "name = ?", query.name)
}

// ListServicesQuery returns the whole catalog ordered by identity.
type ListServicesQuery struct {
	guard guard.ConstructorGuard
}

func NewListServicesQuery() ListServicesQuery {
	return ListServicesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListServicesQuery) Validate() error {
	return q.guard.Validate(ErrListServicesQueryIsNotConstructed)
}

type ListServicesQueryHandler struct {
	db *gorm.DB
}

func NewListServicesQueryHandler(db *gorm.DB) ListServicesQueryHandler {
	return ListServicesQueryHandler{db: db}
}

func (h ListServicesQueryHandler) Handle(ctx context.Context, query ListServicesQuery) ([]ServiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]ServiceView, 0)
	if err := h.db.WithContext(ctx).Table("services").Select(serviceColumns).Order("id").Scan(&views).Error; err != nil {
		return nil, err
	}

	return views, nil
}

func findService(ctx context.Context, db *gorm.DB, param string, key any, where string, args ...any) (ServiceView, error) {
	var view ServiceView
	result := db.WithContext(ctx).Table("services").
		Select(serviceColumns).
		Where(where, args...).
		Limit(1).
		Scan(&view)
	if result.Error != nil {
		return ServiceView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ServiceView{}, errs.NewObjectNotFoundError(param, key)
	}

	return view, nil
}
