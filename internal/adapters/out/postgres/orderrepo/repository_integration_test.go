package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite checks order persistence, status history
// and the foreign keys around orders against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	customers  *customerrepo.GormCustomerRepository
	services   *servicerepo.GormServiceRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	db := suite.database.DB
	suite.repository = orderrepo.NewGormOrderRepository(db, suite.tracker)
	suite.customers = customerrepo.NewGormCustomerRepository(db, suite.tracker)
	suite.services = servicerepo.NewGormServiceRepository(db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithInitialHistory() {
	ctx := context.Background()
	o := suite.newOrder(suite.addCustomer("John Doe"), suite.addService("Wash"))

	err := suite.repository.Add(ctx, o)

	suite.Require().NoError(err)
	suite.False(o.ID().IsZero())
	suite.assertOrderCount(1)
	suite.Equal([]string{"placed"}, suite.historyOf(o.ID()))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownCustomer_ConstraintViolation() {
	ctx := context.Background()
	svc := suite.addService("Wash")
	o := suite.newOrder(999, svc)

	err := suite.repository.Add(ctx, o)

	suite.Require().Error(err)
	suite.True(errs.IsConstraintViolation(err))
	suite.Contains(err.Error(), "customer does not exist")
	suite.assertOrderCount(0)
	suite.assertHistoryCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RestoresStoredOrder() {
	ctx := context.Background()
	customerID := suite.addCustomer("John Doe")
	o := suite.newOrder(customerID, suite.addService("Wash"))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.ID(), got.ID())
	suite.Equal(customerID, got.CustomerID())
	suite.True(decimal.NewFromInt(400).Equal(got.TotalPrice()))
	suite.True(decimal.NewFromInt(2).Equal(got.Weight().Decimal()))
	suite.Equal(order.Placed, got.Status())
	suite.Equal(o.PickupDate().String(), got.PickupDate().String())
	suite.Equal(order.Morning, got.PickupTime())
	suite.Require().NotNil(got.Instructions())
	suite.Equal("Handle with care", *got.Instructions())
	suite.Empty(got.PendingChanges())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_AmountsSurviveColumnScale() {
	ctx := context.Background()
	customerID := suite.addCustomer("John Doe")

	tests := []struct {
		price  string
		weight string
		total  string
	}{
		{price: "199.99", weight: "1.333", total: "266.59"},
		{price: "0.01", weight: "0.5", total: "0.01"},
		{price: "1000000", weight: "1000", total: "1000000000"},
	}

	for i, tt := range tests {
		price, err := kernel.ParsePrice(tt.price)
		suite.Require().NoError(err)
		weight, err := kernel.ParseWeight(tt.weight)
		suite.Require().NoError(err)

		svc, err := service.NewService(fmt.Sprintf("Service %d", i), "", price, service.Kilogram, now)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.services.Add(ctx, svc))

		o, err := order.NewOrder(
			customerID, svc, weight, kernel.NewDate(now).AddDays(1), order.Morning, "", services.NewPricing(), now,
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, o))

		stored, err := suite.repository.Get(ctx, o.ID())

		suite.Require().NoError(err, tt.weight)
		suite.True(weight.Decimal().Equal(stored.Weight().Decimal()), "weight %s", stored.Weight())
		suite.True(decimal.RequireFromString(tt.total).Equal(stored.TotalPrice()), "total %s", stored.TotalPrice())
		suite.True(
			price.Decimal().Mul(stored.Weight().Decimal()).Round(services.PriceScale).Equal(stored.TotalPrice()),
			"total follows the stored weight",
		)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), 42)

	suite.Require().Error(err)
	suite.True(errs.IsNotFound(err))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryOnlyForChanges() {
	ctx := context.Background()
	o := suite.newOrder(suite.addCustomer("John Doe"), suite.addService("Wash"))
	suite.Require().NoError(suite.repository.Add(ctx, o))
	o.ClearChanges()

	changed, err := o.ChangeStatus(order.Processing, now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.True(changed)
	suite.Require().NoError(suite.repository.Update(ctx, o))
	o.ClearChanges()

	changed, err = o.ChangeStatus(order.Processing, now.Add(2*time.Minute))
	suite.Require().NoError(err)
	suite.False(changed)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, stored.Status())
	suite.Equal([]string{"placed", "processing"}, suite.historyOf(o.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_HistoryFollowsTransitions() {
	ctx := context.Background()
	o := suite.newOrder(suite.addCustomer("John Doe"), suite.addService("Wash"))
	suite.Require().NoError(suite.repository.Add(ctx, o))
	o.ClearChanges()

	statuses := []order.Status{order.Pickup, order.Processing, order.Delivery, order.Completed}
	for i, status := range statuses {
		_, err := o.ChangeStatus(status, now.Add(time.Duration(i+1)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Update(ctx, o))
		o.ClearChanges()
	}

	suite.Equal(
		[]string{"placed", "pickup", "processing", "delivery", "completed"},
		suite.historyOf(o.ID()),
	)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	o, err := order.RestoreOrder(
		77, 1, 1, kernel.MustNewWeight(1), decimal.NewFromInt(200), order.Placed,
		kernel.NewDate(now), order.Evening, nil, now,
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), o)

	suite.Require().Error(err)
	suite.True(errs.IsNotFound(err))
	suite.assertHistoryCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesHistoryKeepsParents() {
	ctx := context.Background()
	customerID := suite.addCustomer("John Doe")
	serviceID := suite.addService("Wash")
	o := suite.newOrder(customerID, serviceID)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	deleted, err := suite.repository.Delete(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(deleted)

	deleted, err = suite.repository.Delete(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(deleted)

	suite.assertOrderCount(0)
	suite.assertHistoryCount(0)
	_, err = suite.customers.Get(ctx, customerID)
	suite.Require().NoError(err)
	_, err = suite.services.Get(ctx, serviceID)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteCustomer_CascadesToOrdersAndHistory() {
	ctx := context.Background()
	customerID := suite.addCustomer("John Doe")
	serviceID := suite.addService("Wash")
	for range 2 {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(customerID, serviceID)))
	}
	other := suite.newOrder(suite.addCustomer("Jane Smith"), serviceID)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	deleted, err := suite.customers.Delete(ctx, customerID)

	suite.Require().NoError(err)
	suite.True(deleted)
	suite.assertOrderCount(1)
	suite.assertHistoryCount(1)
	_, err = suite.repository.Get(ctx, other.ID())
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteService_RefusedWhileReferenced() {
	ctx := context.Background()
	serviceID := suite.addService("Wash")
	o := suite.newOrder(suite.addCustomer("John Doe"), serviceID)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	deleted, err := suite.services.Delete(ctx, serviceID)

	suite.Require().Error(err)
	suite.False(deleted)
	suite.True(errs.IsConstraintViolation(err))
	suite.Contains(err.Error(), "still referenced by orders")
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) addCustomer(name string) kernel.ID {
	c, err := customer.NewCustomer(name, "0712345678", "", "", now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customers.Add(context.Background(), c))
	return c.ID()
}

func (suite *OrderRepositoryIntegrationTestSuite) addService(name string) kernel.ID {
	s, err := service.NewService(name, "", kernel.MustNewPrice(200), service.Kilogram, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.services.Add(context.Background(), s))
	return s.ID()
}

// newOrder builds a 2 kg order priced at 200 per kg. The service row is only referenced by id.
func (suite *OrderRepositoryIntegrationTestSuite) newOrder(customerID, serviceID kernel.ID) *order.Order {
	svc, err := service.RestoreService(serviceID, "Wash", nil, kernel.MustNewPrice(200), service.Kilogram, now)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		customerID, svc, kernel.MustNewWeight(2), kernel.NewDate(now).AddDays(1), order.Morning,
		"Handle with care", services.NewPricing(), now,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) historyOf(id kernel.ID) []string {
	var statuses []string
	err := suite.database.DB.Model(&orderrepo.StatusHistoryDTO{}).
		Where("order_id = ?", id.Int64()).
		Order(`"timestamp", id`).
		Pluck("status", &statuses).Error
	suite.Require().NoError(err)
	return statuses
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertHistoryCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.StatusHistoryDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
