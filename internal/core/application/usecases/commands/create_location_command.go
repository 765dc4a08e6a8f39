package commands

import (
	"context"
	"errors"
	"strings"

	"laundry/internal/core/domain/model/location"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/juju/clock"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand registers a branch. Field rules are those of location.NewLocation.
type CreateLocationCommand struct {
	name    string
	address string
	phone   string
	email   string

	guard guard.ConstructorGuard
}

func NewCreateLocationCommand(name, address, phone, email string) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
		email:   strings.TrimSpace(email),
		guard:   guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("location name"))
	}
	if cmd.address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("address"))
	}
	if cmd.phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("phone"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateLocationCommand{}, err
	}

	return cmd, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	clock      clock.Clock
}

func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory, clk clock.Clock) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*location.Location, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, err := location.NewLocation(cmd.name, cmd.address, cmd.phone, cmd.email, h.clock.Now())
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

	if err = uow.LocationRepository().Add(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
