// Package locationrepo persists branch locations with GORM.
package locationrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
)

type LocationDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text;not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:        aggregate.ID().Int64(),
		Name:      aggregate.Name().String(),
		Address:   aggregate.Address(),
		Phone:     aggregate.Phone().String(),
		Email:     aggregate.Email(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	return location.RestoreLocation(kernel.ID(dto.ID), dto.Name, dto.Address, dto.Phone, dto.Email, dto.CreatedAt)
}
