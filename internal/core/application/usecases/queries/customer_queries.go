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
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrFindCustomerByPhoneQueryIsNotConstructed = errors.New(
		"FindCustomerByPhoneQuery must be created via NewFindCustomerByPhoneQuery constructor",
	)
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
)

const customerColumns = "id, name, phone, email, address, created_at"

// GetCustomerQuery looks a customer up by identity.
type GetCustomerQuery struct {
	customerID kernel.ID
	guard      guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.ID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown identity.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	var view CustomerView
	result := h.db.WithContext(ctx).Table("customers").
		Select(customerColumns).
		Where("id = ?", query.customerID.Int64()).
		Limit(1).
		Scan(&view)
	if result.Error != nil {
		return CustomerView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CustomerView{}, errs.NewObjectNotFoundError("customer", query.customerID.Int64())
	}

	return view, nil
}

// FindCustomerByPhoneQuery looks a customer up by phone number. Formatting is ignored:
// "0712 345 678" finds a customer stored as "0712-345-678".
type FindCustomerByPhoneQuery struct {
	digits string
	guard  guard.ConstructorGuard
}

func NewFindCustomerByPhoneQuery(phone string) (FindCustomerByPhoneQuery, error) {
	digits := kernel.Digits(phone)
	if digits == "" {
		return FindCustomerByPhoneQuery{}, errs.NewValueIsRequiredError("phone")
	}
	return FindCustomerByPhoneQuery{digits: digits, guard: guard.NewConstructorGuard()}, nil
}

func (q FindCustomerByPhoneQuery) Validate() error {
	return q.guard.Validate(ErrFindCustomerByPhoneQueryIsNotConstructed)
}

type FindCustomerByPhoneQueryHandler struct {
	db *gorm.DB
}

func NewFindCustomerByPhoneQueryHandler(db *gorm.DB) FindCustomerByPhoneQueryHandler {
	return FindCustomerByPhoneQueryHandler{db: db}
}

// Handle returns the oldest matching customer or an ObjectNotFoundError.
func (h FindCustomerByPhoneQueryHandler) Handle(ctx context.Context, query FindCustomerByPhoneQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	var view CustomerView
	result := h.db.WithContext(ctx).Table("customers").
		Select(customerColumns).
		Where(`regexp_replace(phone, '\D', '', 'g') = ?`, query.digits).
		Order("id").
		Limit(1).
		Scan(&view)
	if result.Error != nil {
		return CustomerView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CustomerView{}, errs.NewObjectNotFoundError("customer with phone", query.digits)
	}

	return view, nil
}

// ListCustomersQuery returns every customer ordered by identity.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle returns an empty slice, not an error, when there are no customers.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]CustomerView, 0)
	if err := h.db.WithContext(ctx).Table("customers").Select(customerColumns).Order("id").Scan(&views).Error; err != nil {
		return nil, err
	}

	return views, nil
}

// ListCustomerOrdersQuery returns the orders of one customer, oldest first.
type ListCustomerOrdersQuery struct {
	customerID kernel.ID
	guard      guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID kernel.ID) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrders(ctx, h.db, "WHERE o.customer_id = ?", query.customerID.Int64())
}

func scanOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderView, error) {
	views := make([]OrderView, 0)
	sql := strings.Join([]string{orderViewSelect, where, "ORDER BY o.created_at, o.id"}, "\n")
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}
