package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("350 5th Ave, Manhattan, NY")

	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))
	suite.Equal(order.Created, retrieved.Status())
	suite.Len(retrieved.Timeline(), 1)
	suite.Equal(order.PlacedEventLabel, retrieved.Timeline()[0].Label())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewOrderID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingID_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("350 5th Ave, Manhattan, NY")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.GetByTrackingID(ctx, testOrder.TrackingID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))

	_, err = suite.repository.GetByTrackingID(ctx, kernel.NewTrackingID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChangePersistsTimeline() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("350 5th Ave, Manhattan, NY")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := testOrder.ChangeStatus(order.PickedUp, "Pickup Location", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickedUp, retrieved.Status())
	suite.Len(retrieved.Timeline(), 2)
	suite.True(retrieved.Timeline().IsOrdered())
	suite.True(retrieved.Timeline().Contains("Picked Up"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("350 5th Ave, Manhattan, NY")

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesDelivered() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	active := suite.createTestOrder("350 5th Ave, Manhattan, NY")
	suite.Require().NoError(suite.repository.Add(ctx, active))

	delivered := suite.createTestOrder("1 Main St, Brooklyn, NY")
	suite.Require().NoError(delivered.ChangeStatus(order.Delivered, "Front Door", time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	orders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 1)
	suite.True(orders[0].IsEqual(active))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByDeliveryAddress_SubstringMatch() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	manhattan := suite.createTestOrder("350 5th Ave, Manhattan, NY")
	suite.Require().NoError(suite.repository.Add(ctx, manhattan))

	brooklyn := suite.createTestOrder("1 Main St, Brooklyn, NY")
	suite.Require().NoError(suite.repository.Add(ctx, brooklyn))

	deliveredManhattan := suite.createTestOrder("2 Wall St, Manhattan, NY")
	suite.Require().NoError(deliveredManhattan.ChangeStatus(order.Delivered, "Front Door", time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, deliveredManhattan))

	matches, err := suite.repository.FindByDeliveryAddress(ctx, "manhattan")
	suite.Require().NoError(err)
	suite.Len(matches, 1)
	suite.True(matches[0].IsEqual(manhattan))

	empty, err := suite.repository.FindByDeliveryAddress(ctx, "Queens")
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByDeliveryAddress_EmptyFragment_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.FindByDeliveryAddress(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelayReasonRoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("350 5th Ave, Manhattan, NY")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	now := time.Now()
	suite.Require().NoError(testOrder.ChangeStatus(order.Delayed, "", now))
	suite.Require().NoError(testOrder.Delay("severe weather conditions", order.DefaultDelayExtension, now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delayed, retrieved.Status())
	suite.Equal("severe weather conditions", retrieved.DelayReason())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(deliveryAddress string) *order.Order {
	pickup, err := kernel.NewLocation("123 Warehouse Rd, Brooklyn, NY")
	suite.Require().NoError(err)
	delivery, err := kernel.NewLocation(deliveryAddress)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), order.Details{
		CustomerID:      "CUST-001",
		CustomerName:    "Jane Smith",
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PackageType:     "electronics",
		Priority:        order.PriorityExpress,
	}, time.Now().Truncate(time.Microsecond))
	suite.Require().NoError(err)

	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
