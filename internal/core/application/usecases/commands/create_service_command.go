package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/guard"
)

var ErrCreateServiceCommandIsNotConstructed = errors.New(
	"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
)

// CreateServiceCommand adds an entry to the service catalog.
//
// Example:
//
//	price, err := kernel.ParsePrice("200")
//	unit, err := service.ParseUnit("kg")
//	cmd, err := NewCreateServiceCommand("Standard Wash & Iron", "", price, unit)
type CreateServiceCommand struct { //nolint:recvcheck //using for validation
	name         kernel.Name
	description  string
	pricePerUnit kernel.Amount
	unit         service.Unit

	guard guard.ConstructorGuard
}

func NewCreateServiceCommand(
	name, description string, pricePerUnit kernel.Amount, unit service.Unit,
) (CreateServiceCommand, error) {
	cmd := CreateServiceCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		pricePerUnit.Validate(),
		unit.Validate(),
	); err != nil {
		return CreateServiceCommand{}, err
	}
	cmd.pricePerUnit = pricePerUnit
	cmd.unit = unit

	return cmd, nil
}

func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

func (c CreateServiceCommand) Name() kernel.Name {
	return c.name
}

func (c CreateServiceCommand) Description() string {
	return c.description
}

func (c CreateServiceCommand) PricePerUnit() kernel.Amount {
	return c.pricePerUnit
}

func (c CreateServiceCommand) Unit() service.Unit {
	return c.unit
}

func (c *CreateServiceCommand) setName(raw string) error {
	name, err := kernel.NewName("service name", raw)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}
