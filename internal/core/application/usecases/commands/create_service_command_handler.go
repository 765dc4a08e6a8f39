package commands

import (
	"context"

	"laundry/internal/core/domain/model/service"

	"github.com/juju/clock"
)

// CreateServiceCommandHandler stores new catalog entries.
// A taken name fails with a ConstraintViolationError from the store.
type CreateServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
	clock      clock.Clock
}

func NewCreateServiceCommandHandler(uowFactory ServiceUoWFactory, clk clock.Clock) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h *CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) (*service.Service, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := service.NewService(cmd.Name().String(), cmd.Description(), cmd.PricePerUnit(), cmd.Unit(), h.clock.Now())
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

	if err = uow.ServiceRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
