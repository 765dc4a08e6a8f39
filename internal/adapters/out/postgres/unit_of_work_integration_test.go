package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var now = time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.ServiceRepository())
	suite.NotNil(uow1.LocationRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin keeps the open transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().NoError(uow.Rollback(ctx), "rollback after commit is a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositoriesAndClearsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	s := suite.newService()
	suite.Require().NoError(uow.ServiceRepository().Add(ctx, s))
	o := suite.newOrder(c.ID(), s)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Len(o.PendingChanges(), 1)

	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(o.PendingChanges(), "committed history is no longer pending")
	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), stored.CustomerID())
	suite.Equal(s.ID(), stored.ServiceID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndHistory() {
	ctx := context.Background()
	c, s := suite.storeParents()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := suite.newOrder(c.ID(), s)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Len(o.PendingChanges(), 1, "rolled back history stays pending")
	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.True(errs.IsNotFound(err))
	suite.assertCount("order_status_history", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStatusChangeAndHistoryCommitTogether() {
	ctx := context.Background()
	c, s := suite.storeParents()
	o := suite.newOrder(c.ID(), s)
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	changed, err := o.ChangeStatus(order.Pickup, now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.True(changed)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount("order_status_history", 1)
	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) storeParents() (*customer.Customer, *service.Service) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	s := suite.newService()
	suite.Require().NoError(uow.ServiceRepository().Add(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))
	return c, s
}

func (suite *UnitOfWorkIntegrationTestSuite) newCustomer() *customer.Customer {
	c, err := customer.NewCustomer("John Doe", "0712345678", "", "", now)
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) newService() *service.Service {
	s, err := service.NewService("Wash", "", kernel.MustNewPrice(200), service.Kilogram, now)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(customerID kernel.ID, s *service.Service) *order.Order {
	o, err := order.NewOrder(
		customerID, s, kernel.MustNewWeight(2), kernel.NewDate(now).AddDays(1), order.Morning, "",
		services.NewPricing(), now,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
