package commands_test

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, s *service.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *service.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.ID) (*service.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*service.Service)
	return s, args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *location.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.ID) (*location.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*location.Location)
	return l, args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	return m.Called().Get(0).(ports.ServiceRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	return m.Called().Get(0).(ports.LocationRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockCustomerUoWFactory struct{ uow *MockUoW }

func (f MockCustomerUoWFactory) Create() commands.CustomerUoW { return f.uow }

type MockServiceUoWFactory struct{ uow *MockUoW }

func (f MockServiceUoWFactory) Create() commands.ServiceUoW { return f.uow }

type MockLocationUoWFactory struct{ uow *MockUoW }

func (f MockLocationUoWFactory) Create() commands.LocationUoW { return f.uow }

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }
