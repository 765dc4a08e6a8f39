package queries

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrDailyReportQueryIsNotConstructed = errors.New(
		"DailyReportQuery must be created via NewDailyReportQuery constructor",
	)
	ErrCustomerReportQueryIsNotConstructed = errors.New(
		"CustomerReportQuery must be created via NewCustomerReportQuery constructor",
	)
)

type StatusCount struct {
	Status string
	Count  int64
}

// DailyReport summarises the orders created on one local calendar day.
type DailyReport struct {
	Date       kernel.Date
	OrderCount int64
	Revenue    decimal.Decimal
	ByStatus   []StatusCount
	Orders     []OrderView
}

type CustomerReport struct {
	Customer   CustomerView
	OrderCount int64
	TotalSpent decimal.Decimal
	Orders     []OrderView
}

type DailyReportQuery struct {
	date  kernel.Date
	loc   *time.Location
	guard guard.ConstructorGuard
}

// NewDailyReportQuery reports on date as seen in the local time zone.
func NewDailyReportQuery(date kernel.Date) (DailyReportQuery, error) {
	return NewDailyReportQueryIn(date, time.Local)
}

func NewDailyReportQueryIn(date kernel.Date, loc *time.Location) (DailyReportQuery, error) {
	if err := date.Validate(); err != nil {
		return DailyReportQuery{}, err
	}
	if loc == nil {
		return DailyReportQuery{}, errs.NewValueIsRequiredError("location")
	}
	return DailyReportQuery{date: date, loc: loc, guard: guard.NewConstructorGuard()}, nil
}

func (q DailyReportQuery) Validate() error {
	return q.guard.Validate(ErrDailyReportQueryIsNotConstructed)
}

// Bounds returns the first and last instant of the reported day.
func (q DailyReportQuery) Bounds() (time.Time, time.Time) {
	day := now.With(q.date.In(q.loc))
	return day.BeginningOfDay(), day.EndOfDay()
}

type DailyReportQueryHandler struct {
	db *gorm.DB
}

func NewDailyReportQueryHandler(db *gorm.DB) DailyReportQueryHandler {
	return DailyReportQueryHandler{db: db}
}

func (h DailyReportQueryHandler) Handle(ctx context.Context, query DailyReportQuery) (DailyReport, error) {
	if err := query.Validate(); err != nil {
		return DailyReport{}, err
	}

	from, to := query.Bounds()
	orders, err := scanOrders(ctx, h.db, "WHERE o.created_at BETWEEN ? AND ?", from, to)
	if err != nil {
		return DailyReport{}, err
	}

	report := DailyReport{
		Date:       query.date,
		OrderCount: int64(len(orders)),
		Revenue:    decimal.Zero,
		ByStatus:   make([]StatusCount, 0),
		Orders:     orders,
	}

	counts := make(map[string]int64)
	for _, o := range orders {
		report.Revenue = report.Revenue.Add(o.TotalPrice)
		counts[o.Status]++
	}
	for _, status := range order.Statuses() {
		if n, ok := counts[status.String()]; ok {
			report.ByStatus = append(report.ByStatus, StatusCount{Status: status.String(), Count: n})
		}
	}

	return report, nil
}

type CustomerReportQuery struct {
	customerID kernel.ID
	guard      guard.ConstructorGuard
}

func NewCustomerReportQuery(customerID kernel.ID) (CustomerReportQuery, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerReportQuery{}, err
	}
	return CustomerReportQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q CustomerReportQuery) Validate() error {
	return q.guard.Validate(ErrCustomerReportQueryIsNotConstructed)
}

type CustomerReportQueryHandler struct {
	db *gorm.DB
}

func NewCustomerReportQueryHandler(db *gorm.DB) CustomerReportQueryHandler {
	return CustomerReportQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown customer. A customer without orders
// gets a zero report.
func (h CustomerReportQueryHandler) Handle(ctx context.Context, query CustomerReportQuery) (CustomerReport, error) {
	if err := query.Validate(); err != nil {
		return CustomerReport{}, err
	}

	getCustomer, err := NewGetCustomerQuery(query.customerID)
	if err != nil {
		return CustomerReport{}, err
	}
	customer, err := NewGetCustomerQueryHandler(h.db).Handle(ctx, getCustomer)
	if err != nil {
		return CustomerReport{}, err
	}

	orders, err := scanOrders(ctx, h.db, "WHERE o.customer_id = ?", query.customerID.Int64())
	if err != nil {
		return CustomerReport{}, err
	}

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice)
	}

	return CustomerReport{
		Customer:   customer,
		OrderCount: int64(len(orders)),
		TotalSpent: total,
		Orders:     orders,
	}, nil
}
