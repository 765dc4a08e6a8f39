package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/juju/clock"
)

var ErrRescheduleOrderCommandIsNotConstructed = errors.New(
	"RescheduleOrderCommand must be created via NewRescheduleOrderCommand constructor",
)

// RescheduleOrderCommand changes pickup date, pickup time or special instructions.
// Weight, service and total price cannot change after an order is placed.
type RescheduleOrderCommand struct {
	orderID kernel.ID
	request order.RescheduleRequest

	guard guard.ConstructorGuard
}

func NewRescheduleOrderCommand(orderID kernel.ID, request order.RescheduleRequest) (RescheduleOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RescheduleOrderCommand{}, err
	}

	return RescheduleOrderCommand{orderID: orderID, request: request, guard: guard.NewConstructorGuard()}, nil
}

func (c RescheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleOrderCommandIsNotConstructed)
}

type RescheduleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

func NewRescheduleOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) RescheduleOrderCommandHandler {
	return RescheduleOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h *RescheduleOrderCommandHandler) Handle(ctx context.Context, cmd RescheduleOrderCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.orderID)
	if err != nil {
		return nil, err
	}

	if err = o.Reschedule(cmd.request, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
