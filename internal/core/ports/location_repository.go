package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
)

type LocationRepository interface {
	Add(ctx context.Context, aggregate *location.Location) error
	Update(ctx context.Context, aggregate *location.Location) error
	Get(ctx context.Context, id kernel.ID) (*location.Location, error)
	Delete(ctx context.Context, id kernel.ID) (bool, error)
}
