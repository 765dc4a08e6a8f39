package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrDeleteServiceCommandIsNotConstructed = errors.New(
	"DeleteServiceCommand must be created via NewDeleteServiceCommand constructor",
)

// DeleteServiceCommand removes a catalog entry. A service still referenced by
// orders is kept and the handler returns a ConstraintViolationError.
type DeleteServiceCommand struct {
	serviceID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteServiceCommand(serviceID kernel.ID) (DeleteServiceCommand, error) {
	if err := serviceID.Validate(); err != nil {
		return DeleteServiceCommand{}, err
	}

	return DeleteServiceCommand{serviceID: serviceID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteServiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceCommandIsNotConstructed)
}

func (c DeleteServiceCommand) ServiceID() kernel.ID {
	return c.serviceID
}

type DeleteServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

func NewDeleteServiceCommandHandler(uowFactory ServiceUoWFactory) DeleteServiceCommandHandler {
	return DeleteServiceCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether a service existed.
func (h *DeleteServiceCommandHandler) Handle(ctx context.Context, cmd DeleteServiceCommand) (bool, error) {
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

	deleted, err := uow.ServiceRepository().Delete(ctx, cmd.ServiceID())
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}
