package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("John Doe", "0712345678", "john@example.com", "")
//	if err != nil {
//	    return err // name or phone rejected, nothing stored
//	}
//	c, err := handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name    kernel.Name
	phone   kernel.Phone
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand validates name and phone. Blank email and address mean none.
func NewCreateCustomerCommand(name, phone, email, address string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		email:   strings.TrimSpace(email),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setName(name), cmd.setPhone(phone)); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() kernel.Name {
	return c.name
}

func (c CreateCustomerCommand) Phone() kernel.Phone {
	return c.phone
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setName(raw string) error {
	name, err := kernel.NewName("name", raw)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setPhone(raw string) error {
	phone, err := kernel.NewPhone(raw)
	if err != nil {
		return err
	}
	c.phone = phone
	return nil
}
