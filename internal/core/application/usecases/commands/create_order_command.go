package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a laundry order.
// Whether customer and service exist and whether the pickup date is still ahead
// is decided by the handler, which knows the store and the clock.
//
// Example:
//
//	weight, _ := kernel.ParseWeight("2")
//	date, _ := kernel.ParseDate("pickup date", "2026-10-17")
//	cmd, err := NewCreateOrderCommand(customerID, serviceID, weight, date, order.Morning, "Please handle with care")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.ID
	serviceID    kernel.ID
	weight       kernel.Amount
	pickupDate   kernel.Date
	pickupTime   order.PickupTime
	instructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks that every typed value was constructed and reports
// all problems together.
func NewCreateOrderCommand(
	customerID, serviceID kernel.ID,
	weight kernel.Amount,
	pickupDate kernel.Date,
	pickupTime order.PickupTime,
	instructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setServiceID(serviceID),
		cmd.setWeight(weight),
		cmd.setPickupDate(pickupDate),
		cmd.setPickupTime(pickupTime),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.instructions = instructions

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c CreateOrderCommand) ServiceID() kernel.ID {
	return c.serviceID
}

// Weight is in kilograms or items, following the unit of the service.
func (c CreateOrderCommand) Weight() kernel.Amount {
	return c.weight
}

func (c CreateOrderCommand) PickupDate() kernel.Date {
	return c.pickupDate
}

func (c CreateOrderCommand) PickupTime() order.PickupTime {
	return c.pickupTime
}

func (c CreateOrderCommand) Instructions() string {
	return c.instructions
}

func (c *CreateOrderCommand) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setServiceID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("service id", err)
	}
	c.serviceID = id
	return nil
}

func (c *CreateOrderCommand) setWeight(weight kernel.Amount) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setPickupDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.pickupDate = date
	return nil
}

func (c *CreateOrderCommand) setPickupTime(pickupTime order.PickupTime) error {
	if err := pickupTime.Validate(); err != nil {
		return err
	}
	c.pickupTime = pickupTime
	return nil
}
