package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrDeleteLocationCommandIsNotConstructed = errors.New(
	"DeleteLocationCommand must be created via NewDeleteLocationCommand constructor",
)

type DeleteLocationCommand struct {
	locationID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteLocationCommand(locationID kernel.ID) (DeleteLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return DeleteLocationCommand{}, err
	}

	return DeleteLocationCommand{locationID: locationID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteLocationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLocationCommandIsNotConstructed)
}

type DeleteLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewDeleteLocationCommandHandler(uowFactory LocationUoWFactory) DeleteLocationCommandHandler {
	return DeleteLocationCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteLocationCommandHandler) Handle(ctx context.Context, cmd DeleteLocationCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.LocationRepository().Delete(ctx, cmd.locationID)
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
