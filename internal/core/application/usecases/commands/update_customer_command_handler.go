package commands

import (
	"context"

	"laundry/internal/core/domain/model/customer"
)

type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, applies the request and stores the result.
// Returns an ObjectNotFoundError for an unknown customer.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
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

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(cmd.Request()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
