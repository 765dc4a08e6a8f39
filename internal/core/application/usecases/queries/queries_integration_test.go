package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/location"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var now = time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local)

// QueriesIntegrationTestSuite runs the read side against a seeded PostgreSQL.
//
// Seed:
//   - customers John Doe (1) and Jane Smith (2), Bob Idle (3) without orders
//   - services Wash & Fold 3/kg (1) and Dry Cleaning 12.50/item (2)
//   - order 1: John, 2 kg wash, created today, processing
//   - order 2: John, 3 items dry cleaning, created today, placed
//   - order 3: Jane, 1.5 kg wash, created yesterday, completed
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	db       *gorm.DB
	factory  ports.UnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.db = database.DB
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.seed()
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) TestGetCustomer() {
	query, err := queries.NewGetCustomerQuery(1)
	suite.Require().NoError(err)

	view, err := queries.NewGetCustomerQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("John Doe", view.Name)
	suite.Require().NotNil(view.Email)
	suite.Equal("john@example.com", *view.Email)

	query, err = queries.NewGetCustomerQuery(99)
	suite.Require().NoError(err)
	_, err = queries.NewGetCustomerQueryHandler(suite.db).Handle(context.Background(), query)
	suite.True(errs.IsNotFound(err))
}

func (suite *QueriesIntegrationTestSuite) TestFindCustomerByPhone_IgnoresFormatting() {
	query, err := queries.NewFindCustomerByPhoneQuery("0723 456 789")
	suite.Require().NoError(err)

	view, err := queries.NewFindCustomerByPhoneQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Jane Smith", view.Name)
	suite.Equal("0723-456-789", view.Phone)
}

func (suite *QueriesIntegrationTestSuite) TestListCustomersAndTheirOrders() {
	customers, err := queries.NewListCustomersQueryHandler(suite.db).Handle(context.Background(), queries.NewListCustomersQuery())
	suite.Require().NoError(err)
	suite.Len(customers, 3)

	query, err := queries.NewListCustomerOrdersQuery(1)
	suite.Require().NoError(err)
	orders, err := queries.NewListCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("Wash & Fold", orders[0].ServiceName)
	suite.Equal("kg", orders[0].Unit)
	suite.Equal("Dry Cleaning", orders[1].ServiceName)

	query, err = queries.NewListCustomerOrdersQuery(3)
	suite.Require().NoError(err)
	orders, err = queries.NewListCustomerOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *QueriesIntegrationTestSuite) TestServiceLookups() {
	ctx := context.Background()
	byName, err := queries.NewFindServiceByNameQuery("  Dry Cleaning ")
	suite.Require().NoError(err)
	view, err := queries.NewFindServiceByNameQueryHandler(suite.db).Handle(ctx, byName)
	suite.Require().NoError(err)
	suite.Equal(int64(2), view.ID)
	suite.True(decimal.RequireFromString("12.50").Equal(view.PricePerUnit))

	byName, err = queries.NewFindServiceByNameQuery("dry cleaning")
	suite.Require().NoError(err)
	_, err = queries.NewFindServiceByNameQueryHandler(suite.db).Handle(ctx, byName)
	suite.True(errs.IsNotFound(err))

	byID, err := queries.NewGetServiceQuery(1)
	suite.Require().NoError(err)
	view, err = queries.NewGetServiceQueryHandler(suite.db).Handle(ctx, byID)
	suite.Require().NoError(err)
	suite.Equal("Wash & Fold", view.Name)

	all, err := queries.NewListServicesQueryHandler(suite.db).Handle(ctx, queries.NewListServicesQuery())
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *QueriesIntegrationTestSuite) TestLocationLookups() {
	ctx := context.Background()
	all, err := queries.NewListLocationsQueryHandler(suite.db).Handle(ctx, queries.NewListLocationsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)

	query, err := queries.NewGetLocationQuery(kernel.ID(all[0].ID))
	suite.Require().NoError(err)
	view, err := queries.NewGetLocationQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Downtown Branch", view.Name)
}

func (suite *QueriesIntegrationTestSuite) TestOrderLookups() {
	ctx := context.Background()
	get, err := queries.NewGetOrderQuery(3)
	suite.Require().NoError(err)
	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, get)
	suite.Require().NoError(err)
	suite.Equal("Jane Smith", view.CustomerName)
	suite.Equal("completed", view.Status)
	suite.True(decimal.RequireFromString("4.5").Equal(view.TotalPrice))

	get, err = queries.NewGetOrderQuery(42)
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, get)
	suite.True(errs.IsNotFound(err))

	all, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, queries.NewListOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(all, 3)

	placed, err := queries.NewListOrdersByStatusQuery(order.Placed)
	suite.Require().NoError(err)
	filtered, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, placed)
	suite.Require().NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal(int64(2), filtered[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_ChronologicalWithInsertionTieBreak() {
	ctx := context.Background()
	query, err := queries.NewGetOrderHistoryQuery(3)
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	statuses := make([]string, 0, len(history))
	for _, entry := range history {
		statuses = append(statuses, entry.Status)
	}
	suite.Equal([]string{"placed", "pickup", "processing", "delivery", "completed"}, statuses)

	query, err = queries.NewGetOrderHistoryQuery(42)
	suite.Require().NoError(err)
	history, err = queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *QueriesIntegrationTestSuite) TestDailyReport() {
	query, err := queries.NewDailyReportQuery(kernel.NewDate(now))
	suite.Require().NoError(err)

	report, err := queries.NewDailyReportQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), report.OrderCount)
	suite.True(decimal.RequireFromString("43.5").Equal(report.Revenue), report.Revenue.String())
	suite.Equal([]queries.StatusCount{
		{Status: "placed", Count: 1},
		{Status: "processing", Count: 1},
	}, report.ByStatus)
	suite.Len(report.Orders, 2)

	query, err = queries.NewDailyReportQuery(kernel.NewDate(now).AddDays(-3))
	suite.Require().NoError(err)
	report, err = queries.NewDailyReportQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Zero(report.OrderCount)
	suite.True(report.Revenue.IsZero())
	suite.Empty(report.ByStatus)
}

func (suite *QueriesIntegrationTestSuite) TestCustomerReport() {
	ctx := context.Background()
	query, err := queries.NewCustomerReportQuery(1)
	suite.Require().NoError(err)

	report, err := queries.NewCustomerReportQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("John Doe", report.Customer.Name)
	suite.Equal(int64(2), report.OrderCount)
	suite.True(decimal.RequireFromString("43.5").Equal(report.TotalSpent))

	query, err = queries.NewCustomerReportQuery(3)
	suite.Require().NoError(err)
	report, err = queries.NewCustomerReportQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Zero(report.OrderCount)
	suite.True(report.TotalSpent.IsZero())

	query, err = queries.NewCustomerReportQuery(99)
	suite.Require().NoError(err)
	_, err = queries.NewCustomerReportQueryHandler(suite.db).Handle(ctx, query)
	suite.True(errs.IsNotFound(err))
}

func (suite *QueriesIntegrationTestSuite) seed() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	john := suite.must(customer.NewCustomer("John Doe", "0712345678", "john@example.com", "", now))
	jane := suite.must(customer.NewCustomer("Jane Smith", "0723-456-789", "", "", now))
	bob := suite.must(customer.NewCustomer("Bob Idle", "0734567890", "", "", now))
	for _, c := range []*customer.Customer{john, jane, bob} {
		suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	}

	wash, err := service.NewService("Wash & Fold", "", kernel.MustNewPrice(3), service.Kilogram, now)
	suite.Require().NoError(err)
	dry, err := service.NewService("Dry Cleaning", "", kernel.MustNewPrice(12.5), service.Item, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ServiceRepository().Add(ctx, wash))
	suite.Require().NoError(uow.ServiceRepository().Add(ctx, dry))

	branch, err := location.NewLocation("Downtown Branch", "123 Main St", "0700111222", "", now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LocationRepository().Add(ctx, branch))

	tomorrow := kernel.NewDate(now).AddDays(1)
	pricing := services.NewPricing()
	first, err := order.NewOrder(john.ID(), wash, kernel.MustNewWeight(2), tomorrow, order.Morning, "", pricing, now)
	suite.Require().NoError(err)
	_, err = first.ChangeStatus(order.Processing, now.Add(time.Minute))
	suite.Require().NoError(err)
	second, err := order.NewOrder(john.ID(), dry, kernel.MustNewWeight(3), tomorrow, order.Evening, "", pricing, now.Add(time.Second))
	suite.Require().NoError(err)

	yesterday := now.AddDate(0, 0, -1)
	third, err := order.NewOrder(jane.ID(), wash, kernel.MustNewWeight(1.5), kernel.NewDate(yesterday), order.Afternoon, "", pricing, yesterday)
	suite.Require().NoError(err)
	// Every transition shares one timestamp, insertion order decides.
	for _, status := range []order.Status{order.Pickup, order.Processing, order.Delivery, order.Completed} {
		_, err = third.ChangeStatus(status, yesterday.Add(time.Hour))
		suite.Require().NoError(err)
	}

	for _, o := range []*order.Order{first, second, third} {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesIntegrationTestSuite) must(c *customer.Customer, err error) *customer.Customer {
	suite.Require().NoError(err)
	return c
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
