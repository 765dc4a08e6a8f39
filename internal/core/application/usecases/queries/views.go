// Package queries contains read-only operations over the laundry store.
// Handlers read straight from the database into flat views; they never load aggregates
// and never write.
package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerView is a customer row as shown to the operator.
type CustomerView struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string
	Address   *string
	CreatedAt time.Time
}

type ServiceView struct {
	ID           int64
	Name         string
	Description  *string
	PricePerUnit decimal.Decimal
	Unit         string
	CreatedAt    time.Time
}

type LocationView struct {
	ID        int64
	Name      string
	Address   string
	Phone     string
	Email     *string
	CreatedAt time.Time
}

// OrderView is an order joined with the names of its customer and service.
type OrderView struct {
	ID                  int64
	CustomerID          int64
	CustomerName        string
	ServiceID           int64
	ServiceName         string
	Unit                string
	Weight              decimal.Decimal
	TotalPrice          decimal.Decimal
	Status              string
	PickupDate          time.Time
	PickupTime          string
	SpecialInstructions *string
	CreatedAt           time.Time
}

// StatusHistoryView is one entry of an order's status history.
type StatusHistoryView struct {
	Status    string
	Timestamp time.Time
}

const orderViewSelect = `
	SELECT
		o.id,
		o.customer_id,
		c.name AS customer_name,
		o.service_id,
		s.name AS service_name,
		s.unit,
		o.weight,
		o.total_price,
		o.status,
		o.pickup_date,
		o.pickup_time,
		o.special_instructions,
		o.created_at
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN services s ON s.id = o.service_id
`
