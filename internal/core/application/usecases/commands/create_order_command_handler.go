package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/juju/clock"
)

// CreateOrderCommandHandler places orders.
//
// Workflow:
//  1. Load the customer and the service, an unknown one is an ObjectNotFoundError
//  2. Quote the total from the current service price
//  3. Store the order and its initial "placed" history entry in one transaction
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPricing(), clock.WallClock)
//	o, err := handler.Handle(ctx, cmd)
//	if errs.IsNotFound(err) {
//	    fmt.Println("Customer or service not found")
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.Pricing
	clock      clock.Clock
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, pricing services.Pricing, clk clock.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		clock:      clk,
	}
}

// Handle returns the stored order with its identity. A pickup date before today
// fails with an invalid value error and nothing is stored.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	svc, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		cmd.CustomerID(),
		svc,
		cmd.Weight(),
		cmd.PickupDate(),
		cmd.PickupTime(),
		cmd.Instructions(),
		h.pricing,
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
