// Package orderrepo persists order aggregates and their status history with GORM.
// An order row and the history rows written with it always share one transaction.
package orderrepo

import (
	"errors"
	"time"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table.
//
// Foreign keys:
//   - customer_id ON DELETE CASCADE, a deleted customer takes its orders along
//   - service_id ON DELETE RESTRICT, a service with orders cannot be deleted
//   - order_status_history.order_id ON DELETE CASCADE
//
// Customer, Service and History exist only to declare those constraints;
// repositories never load or save them as associations.
type OrderDTO struct {
	ID                  int64                     `gorm:"primaryKey;autoIncrement"`
	CustomerID          int64                     `gorm:"not null;index"`
	Customer            *customerrepo.CustomerDTO `gorm:"constraint:OnDelete:CASCADE"`
	ServiceID           int64                     `gorm:"not null;index"`
	Service             *servicerepo.ServiceDTO   `gorm:"constraint:OnDelete:RESTRICT"`
	Weight              decimal.Decimal           `gorm:"type:numeric(12,3);not null"`
	TotalPrice          decimal.Decimal           `gorm:"type:numeric(12,2);not null"`
	Status              string                    `gorm:"type:varchar(16);not null;index"`
	PickupDate          time.Time                 `gorm:"type:date;not null"`
	PickupTime          string                    `gorm:"type:varchar(16);not null"`
	SpecialInstructions *string                   `gorm:"type:text"`
	CreatedAt           time.Time                 `gorm:"not null;index"`
	History             []StatusHistoryDTO        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// StatusHistoryDTO is an append-only row of order_status_history.
// Rows are ordered by timestamp and then by id, which follows insertion order.
type StatusHistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	Status    string    `gorm:"type:varchar(16);not null"`
	Timestamp time.Time `gorm:"not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Int64(),
		CustomerID:          aggregate.CustomerID().Int64(),
		ServiceID:           aggregate.ServiceID().Int64(),
		Weight:              aggregate.Weight().Decimal(),
		TotalPrice:          aggregate.TotalPrice(),
		Status:              aggregate.Status().String(),
		PickupDate:          aggregate.PickupDate().Time(),
		PickupTime:          aggregate.PickupTime().String(),
		SpecialInstructions: aggregate.Instructions(),
		CreatedAt:           aggregate.CreatedAt(),
	}
}

func historyFromDomain(orderID kernel.ID, changes []order.StatusChange) []StatusHistoryDTO {
	rows := make([]StatusHistoryDTO, 0, len(changes))
	for _, change := range changes {
		rows = append(rows, StatusHistoryDTO{
			OrderID:   orderID.Int64(),
			Status:    change.Status.String(),
			Timestamp: change.At,
		})
	}
	return rows
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	weight, weightErr := kernel.NewWeight(dto.Weight)
	status, statusErr := order.ParseStatus(dto.Status)
	pickupTime, pickupErr := order.ParsePickupTime(dto.PickupTime)
	if err := errors.Join(weightErr, statusErr, pickupErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		kernel.ID(dto.ServiceID),
		weight,
		dto.TotalPrice,
		status,
		kernel.NewDate(dto.PickupDate),
		pickupTime,
		dto.SpecialInstructions,
		dto.CreatedAt,
	)
}
