package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	handler   queries.ListOrdersQueryHandler
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewListOrdersQueryHandler(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewListOrdersQuery(nil, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_PageSizeAndTotal() {
	suite.seedOrders(5, order.Created)

	query, err := queries.NewListOrdersQuery(nil, 1, 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(5), result.Total)
	suite.Equal(1, result.Page)
	suite.Equal(2, result.Limit)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_PageBeyondEnd_ReturnsEmptySliceWithTotal() {
	suite.seedOrders(3, order.Created)

	query, err := queries.NewListOrdersQuery(nil, 5, 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result.Orders)
	suite.Empty(result.Orders)
	suite.Equal(int64(3), result.Total)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StatusFilterAffectsTotal() {
	suite.seedOrders(3, order.Created)
	suite.seedOrders(2, order.Delayed)

	delayed := order.Delayed
	query, err := queries.NewListOrdersQuery(&delayed, 1, 10)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(2), result.Total)
	for _, o := range result.Orders {
		suite.Equal("delayed", o.Status)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidPagination() {
	_, err := queries.NewListOrdersQuery(nil, 0, 10)
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrPageIsInvalid)

	_, err = queries.NewListOrdersQuery(nil, 1, 0)
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrLimitIsInvalid)
}

func (suite *ListOrdersQueryHandlerTestSuite) seedOrders(count int, status order.Status) {
	ctx := context.Background()
	uow := suite.factory.Create()

	for i := 0; i < count; i++ {
		pickup, err := kernel.NewLocation("123 Warehouse Rd, Brooklyn, NY")
		suite.Require().NoError(err)
		delivery, err := kernel.NewLocation("350 5th Ave, Manhattan, NY")
		suite.Require().NoError(err)

		stored, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), order.Details{
			CustomerID:      "CUST-001",
			CustomerName:    "Jane Smith",
			PickupAddress:   pickup,
			DeliveryAddress: delivery,
			PackageType:     "documents",
			Priority:        order.PriorityStandard,
		}, time.Now().Truncate(time.Microsecond))
		suite.Require().NoError(err)

		if status != order.Created {
			suite.Require().NoError(stored.ChangeStatus(status, "", time.Now()))
		}

		suite.Require().NoError(uow.OrderRepository().Add(ctx, stored))
	}
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
