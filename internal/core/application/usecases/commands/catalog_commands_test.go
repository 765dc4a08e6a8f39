package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateServiceCommand("Wash", "", kernel.MustNewPrice(200), service.Kilogram)
	require.NoError(t, err)

	servicesRepo := new(MockServiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(servicesRepo).Once(),
		servicesRepo.On("Add", ctx, mock.AnythingOfType("*service.Service")).
			Return(errs.NewConstraintViolationError("service", "name already exists")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateServiceCommandHandler(MockServiceUoWFactory{uow: uow}, newClock())
	s, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, errs.IsConstraintViolation(err))
	uow.AssertExpectations(t)
}

func TestNewCreateServiceCommand_RejectsZeroPriceAndUnknownUnit(t *testing.T) {
	_, err := commands.NewCreateServiceCommand("Wash", "", kernel.Amount{}, service.UnknownUnit)

	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
}

func TestUpdateServiceCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	price := kernel.MustNewPrice(300)
	cmd, err := commands.NewUpdateServiceCommand(7, service.UpdateRequest{PricePerUnit: &price})
	require.NoError(t, err)

	servicesRepo := new(MockServiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(servicesRepo).Once(),
		servicesRepo.On("Get", ctx, kernel.ID(7)).Return(washService(t), nil).Once(),
		servicesRepo.On("Update", ctx, mock.AnythingOfType("*service.Service")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateServiceCommandHandler(MockServiceUoWFactory{uow: uow})
	s, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "300", s.PricePerUnit().String())
	uow.AssertExpectations(t)
}

func TestDeleteServiceCommandHandler_Handle_ReferencedService(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteServiceCommand(7)
	require.NoError(t, err)

	servicesRepo := new(MockServiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(servicesRepo).Once(),
		servicesRepo.On("Delete", ctx, kernel.ID(7)).
			Return(false, errs.NewConstraintViolationError("service", "is still referenced by orders")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteServiceCommandHandler(MockServiceUoWFactory{uow: uow})
	deleted, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.False(t, deleted)
	assert.True(t, errs.IsConstraintViolation(err))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateLocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateLocationCommand("LaundryConnect Westlands", "456 Waiyaki Way", "+254 700 234567", "")
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Add", ctx, mock.AnythingOfType("*location.Location")).Run(func(args mock.Arguments) {
			_ = args.Get(1).(*location.Location).AssignID(2)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateLocationCommandHandler(MockLocationUoWFactory{uow: uow}, newClock())
	l, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(2), l.ID())
	uow.AssertExpectations(t)
}

func TestNewCreateLocationCommand_RequiresFields(t *testing.T) {
	_, err := commands.NewCreateLocationCommand("", "", "", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "address")
}

func TestUpdateLocationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	address := "Moi Avenue"
	cmd, err := commands.NewUpdateLocationCommand(9, location.UpdateRequest{Address: &address})
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Get", ctx, kernel.ID(9)).Return(nil, errs.NewObjectNotFoundError("location", int64(9))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateLocationCommandHandler(MockLocationUoWFactory{uow: uow})
	_, err = h.Handle(ctx, cmd)

	require.True(t, errs.IsNotFound(err))
	uow.AssertExpectations(t)
}

func TestDeleteLocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteLocationCommand(2)
	require.NoError(t, err)

	locations := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		locations.On("Delete", ctx, kernel.ID(2)).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteLocationCommandHandler(MockLocationUoWFactory{uow: uow})
	deleted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, deleted)
	uow.AssertExpectations(t)
}
