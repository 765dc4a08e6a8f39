package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
)

// ServiceRepository stores the service catalog.
type ServiceRepository interface {
	// Add inserts a new service and assigns its identity.
	// A duplicate name fails with a ConstraintViolationError.
	Add(ctx context.Context, aggregate *service.Service) error

	Update(ctx context.Context, aggregate *service.Service) error

	Get(ctx context.Context, id kernel.ID) (*service.Service, error)

	// Delete removes a service that no order references.
	// A referenced service fails with a ConstraintViolationError.
	Delete(ctx context.Context, id kernel.ID) (bool, error)
}
