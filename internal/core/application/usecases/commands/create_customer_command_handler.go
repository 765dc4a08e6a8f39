package commands

import (
	"context"

	"laundry/internal/core/domain/model/customer"

	"github.com/juju/clock"
)

// CreateCustomerCommandHandler stores new customers.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      clock.Clock
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, clk clock.Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle creates the customer and returns it with its assigned identity.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.Name().String(), cmd.Phone().String(), cmd.Email(), cmd.Address(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
