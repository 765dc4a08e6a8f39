package postgres

import (
	"fmt"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/locationrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/servicerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the five laundry tables with their indexes and foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&servicerepo.ServiceDTO{},
		&locationrepo.LocationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
