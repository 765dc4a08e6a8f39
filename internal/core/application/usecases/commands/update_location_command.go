package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
	"laundry/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

type UpdateLocationCommand struct {
	locationID kernel.ID
	request    location.UpdateRequest

	guard guard.ConstructorGuard
}

func NewUpdateLocationCommand(locationID kernel.ID, request location.UpdateRequest) (UpdateLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return UpdateLocationCommand{}, err
	}

	return UpdateLocationCommand{locationID: locationID, request: request, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

type UpdateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewUpdateLocationCommandHandler(uowFactory LocationUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) (*location.Location, error) {
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

	repo := uow.LocationRepository()
	l, err := repo.Get(ctx, cmd.locationID)
	if err != nil {
		return nil, err
	}

	if err = l.Update(cmd.request); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
