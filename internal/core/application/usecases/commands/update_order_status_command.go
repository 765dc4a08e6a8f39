package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/juju/clock"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to another status.
type UpdateOrderStatusCommand struct {
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.ID, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{orderID: orderID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// UpdateOrderStatusResult carries the order after the command.
// Changed is false when the order already had the requested status.
type UpdateOrderStatusResult struct {
	Order   *order.Order
	Changed bool
}

// UpdateOrderStatusCommandHandler changes order status and appends the history entry
// in the same transaction. Repeating the current status writes nothing.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}

	changed, err := o.ChangeStatus(cmd.Status(), h.clock.Now())
	if err != nil {
		return UpdateOrderStatusResult{}, err
	}
	if !changed {
		return UpdateOrderStatusResult{Order: o}, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResult{}, err
	}

	return UpdateOrderStatusResult{Order: o, Changed: true}, nil
}
