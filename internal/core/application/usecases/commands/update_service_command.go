package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/guard"
)

var ErrUpdateServiceCommandIsNotConstructed = errors.New(
	"UpdateServiceCommand must be created via NewUpdateServiceCommand constructor",
)

// UpdateServiceCommand changes a catalog entry. Existing orders keep the total
// they were quoted.
type UpdateServiceCommand struct {
	serviceID kernel.ID
	request   service.UpdateRequest

	guard guard.ConstructorGuard
}

func NewUpdateServiceCommand(serviceID kernel.ID, request service.UpdateRequest) (UpdateServiceCommand, error) {
	if err := serviceID.Validate(); err != nil {
		return UpdateServiceCommand{}, err
	}

	return UpdateServiceCommand{serviceID: serviceID, request: request, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateServiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceCommandIsNotConstructed)
}

func (c UpdateServiceCommand) ServiceID() kernel.ID {
	return c.serviceID
}

func (c UpdateServiceCommand) Request() service.UpdateRequest {
	return c.request
}

type UpdateServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
}

func NewUpdateServiceCommandHandler(uowFactory ServiceUoWFactory) UpdateServiceCommandHandler {
	return UpdateServiceCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateServiceCommandHandler) Handle(ctx context.Context, cmd UpdateServiceCommand) (*service.Service, error) {
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

	repo := uow.ServiceRepository()
	s, err := repo.Get(ctx, cmd.ServiceID())
	if err != nil {
		return nil, err
	}

	if err = s.Update(cmd.Request()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
