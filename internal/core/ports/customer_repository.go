// Package ports defines the persistence contracts of the laundry domain.
// Adapters implement them; application handlers depend only on these interfaces.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
)

// CustomerRepository stores customer aggregates.
type CustomerRepository interface {
	// Add inserts a new customer and assigns its identity.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists the mutable fields of an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get returns the customer or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// Delete removes the customer together with its orders and their history.
	// It reports whether a customer existed.
	Delete(ctx context.Context, id kernel.ID) (bool, error)
}
