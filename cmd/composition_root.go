package cmd

import (
	"log/slog"

	"laundry/internal/adapters/in/cli"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/seed"

	"github.com/juju/clock"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, clk clock.Clock, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clk,
		logger:     logger,
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) serviceUoWFactory() commands.ServiceUoWFactory {
	return FuncServiceUoWFactory(func() commands.ServiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) locationUoWFactory() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateServiceCommandHandler() commands.CreateServiceCommandHandler {
	return commands.NewCreateServiceCommandHandler(c.serviceUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateServiceCommandHandler() commands.UpdateServiceCommandHandler {
	return commands.NewUpdateServiceCommandHandler(c.serviceUoWFactory())
}

func (c *CompositionRoot) CreateDeleteServiceCommandHandler() commands.DeleteServiceCommandHandler {
	return commands.NewDeleteServiceCommandHandler(c.serviceUoWFactory())
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.locationUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteLocationCommandHandler() commands.DeleteLocationCommandHandler {
	return commands.NewDeleteLocationCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), services.NewPricing(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRescheduleOrderCommandHandler() commands.RescheduleOrderCommandHandler {
	return commands.NewRescheduleOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

// CLIHandlers wires every use case the menus reach.
func (c *CompositionRoot) CLIHandlers() cli.Handlers {
	return cli.Handlers{
		CreateCustomer:    c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:    c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:    c.CreateDeleteCustomerCommandHandler(),
		CreateService:     c.CreateCreateServiceCommandHandler(),
		UpdateService:     c.CreateUpdateServiceCommandHandler(),
		DeleteService:     c.CreateDeleteServiceCommandHandler(),
		CreateLocation:    c.CreateCreateLocationCommandHandler(),
		UpdateLocation:    c.CreateUpdateLocationCommandHandler(),
		DeleteLocation:    c.CreateDeleteLocationCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		RescheduleOrder:   c.CreateRescheduleOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),

		GetCustomer:         queries.NewGetCustomerQueryHandler(c.gormDB),
		FindCustomerByPhone: queries.NewFindCustomerByPhoneQueryHandler(c.gormDB),
		ListCustomers:       queries.NewListCustomersQueryHandler(c.gormDB),
		ListCustomerOrders:  queries.NewListCustomerOrdersQueryHandler(c.gormDB),
		GetService:          queries.NewGetServiceQueryHandler(c.gormDB),
		FindServiceByName:   queries.NewFindServiceByNameQueryHandler(c.gormDB),
		ListServices:        queries.NewListServicesQueryHandler(c.gormDB),
		GetLocation:         queries.NewGetLocationQueryHandler(c.gormDB),
		ListLocations:       queries.NewListLocationsQueryHandler(c.gormDB),
		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:          queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrderHistory:     queries.NewGetOrderHistoryQueryHandler(c.gormDB),
		DailyReport:         queries.NewDailyReportQueryHandler(c.gormDB),
		CustomerReport:      queries.NewCustomerReportQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) Seeder() *seed.Seeder {
	return seed.NewSeeder(seed.Handlers{
		CreateCustomer:    c.CreateCreateCustomerCommandHandler(),
		CreateService:     c.CreateCreateServiceCommandHandler(),
		CreateLocation:    c.CreateCreateLocationCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		ListServices:      queries.NewListServicesQueryHandler(c.gormDB),
	}, c.clock, c.logger)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncServiceUoWFactory func() commands.ServiceUoW

func (f FuncServiceUoWFactory) Create() commands.ServiceUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
