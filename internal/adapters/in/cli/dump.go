package cli

import (
	"context"
	"fmt"

	"laundry/internal/core/application/usecases/queries"

	"github.com/davecgh/go-spew/spew"
)

// Dump writes every stored record in Go syntax, for support tickets and debugging.
func (a *App) Dump(ctx context.Context) error {
	customers, err := a.h.ListCustomers.Handle(ctx, queries.NewListCustomersQuery())
	if err != nil {
		return fmt.Errorf("dump customers: %w", err)
	}
	services, err := a.h.ListServices.Handle(ctx, queries.NewListServicesQuery())
	if err != nil {
		return fmt.Errorf("dump services: %w", err)
	}
	locations, err := a.h.ListLocations.Handle(ctx, queries.NewListLocationsQuery())
	if err != nil {
		return fmt.Errorf("dump locations: %w", err)
	}
	orders, err := a.h.ListOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return fmt.Errorf("dump orders: %w", err)
	}

	a.dumper().Fdump(a.out, customers, services, locations, orders)
	return nil
}

func (a *App) dumper() *spew.ConfigState {
	return &spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
}
