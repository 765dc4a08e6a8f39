package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks the aggregates written through its repositories.
// Client code must explicitly manage the transaction lifecycle:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) //nolint:errcheck
//	// ... use repositories
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and lets tracked aggregates forget
	// their pending changes. Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// After a successful Commit it is a no-op.
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	ServiceRepository() ServiceRepository
	LocationRepository() LocationRepository
	OrderRepository() OrderRepository
}
