package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates and their status history.
type OrderRepository interface {
	// Add inserts the order and its pending history entries in one atomic write
	// and assigns the order identity.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, pickup details and pending history entries in one atomic write.
	// Customer, service, weight and total price are never written again.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order without history or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes the order and its history. It reports whether an order existed.
	Delete(ctx context.Context, id kernel.ID) (bool, error)
}
