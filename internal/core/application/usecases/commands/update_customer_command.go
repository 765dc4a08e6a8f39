package commands

import (
	"errors"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand changes the fields set in the request. Field values are
// checked by the customer aggregate so that all of them are applied or none.
type UpdateCustomerCommand struct {
	customerID kernel.ID
	request    customer.UpdateRequest

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID kernel.ID, request customer.UpdateRequest) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		request:    request,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c UpdateCustomerCommand) Request() customer.UpdateRequest {
	return c.request
}
