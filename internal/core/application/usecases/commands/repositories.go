// Package commands contains the operations that change the laundry store.
// Every command is a value validated by its constructor; every handler runs the
// command inside one unit of work: begin, deferred rollback, explicit commit.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces give each handler the repositories it needs and nothing more.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ServiceUoW manages transactions for catalog operations.
	ServiceUoW interface {
		TxManager
		ServiceRepoFactory
	}

	ServiceUoWFactory interface {
		Create() ServiceUoW
	}

	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// OrderUoW manages transactions for the order lifecycle. Creating an order
	// reads the customer and the service in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   svc, err := uow.ServiceRepository().Get(ctx, serviceID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		CustomerRepoFactory
		ServiceRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
