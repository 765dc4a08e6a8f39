// Package customerrepo persists customer aggregates with GORM.
// It maps between the customer domain model and the customers table.
package customerrepo

import (
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
)

// CustomerDTO is a row of the customers table.
type CustomerDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null;index"`
	Email     *string   `gorm:"type:varchar(255)"`
	Address   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Int64(),
		Name:      aggregate.Name().String(),
		Phone:     aggregate.Phone().String(),
		Email:     aggregate.Email(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(kernel.ID(dto.ID), dto.Name, dto.Phone, dto.Email, dto.Address, dto.CreatedAt)
}
