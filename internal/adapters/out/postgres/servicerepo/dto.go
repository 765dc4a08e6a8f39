// Package servicerepo persists the service catalog with GORM.
package servicerepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"

	"github.com/shopspring/decimal"
)

// ServiceDTO is a row of the services table. Name is unique.
type ServiceDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description  *string         `gorm:"type:text"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Unit         string          `gorm:"type:varchar(8);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

func fromDomain(aggregate *service.Service) ServiceDTO {
	return ServiceDTO{
		ID:           aggregate.ID().Int64(),
		Name:         aggregate.Name().String(),
		Description:  aggregate.Description(),
		PricePerUnit: aggregate.PricePerUnit().Decimal(),
		Unit:         aggregate.Unit().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto ServiceDTO) (*service.Service, error) {
	price, err := kernel.NewPrice(dto.PricePerUnit)
	if err != nil {
		return nil, err
	}

	unit, err := service.ParseUnit(dto.Unit)
	if err != nil {
		return nil, err
	}

	return service.RestoreService(kernel.ID(dto.ID), dto.Name, dto.Description, price, unit, dto.CreatedAt)
}
