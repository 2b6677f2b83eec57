package postgres_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order and tracking repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &trackingrepo.TrackingRecordDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, tracking_records").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx)) // idempotent
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Commit(ctx)) // no active transaction

	uow = suite.factory.Create()
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderAndTrackingCommitTogether() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TrackingRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(testOrder))

	storedRecord, err := suite.factory.Create().TrackingRepository().Get(ctx, record.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID().String(), storedRecord.OrderID().String())
	suite.Equal(tracking.InitialLocationAddress, storedRecord.CurrentLocation().Address())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsBothWrites() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TrackingRepository().Add(ctx, record))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, recordCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("tracking_records").Count(&recordCount).Error)
	suite.Zero(orderCount)
	suite.Zero(recordCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransactionWritesImmediately() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TrackingRepository().Add(ctx, record))

	var orderCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Equal(int64(1), orderCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStatusUpdateWorkflow() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.TrackingRepository().Add(ctx, record))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	stored, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(stored.ChangeStatus(order.InTransit, "Distribution Center - Manhattan", time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, stored))

	storedRecord, err := uow.TrackingRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	location, err := kernel.NewLocation("Distribution Center - Manhattan")
	suite.Require().NoError(err)
	suite.Require().NoError(storedRecord.Refresh(stored, &location))
	suite.Require().NoError(uow.TrackingRepository().Update(ctx, storedRecord))

	suite.Require().NoError(uow.Commit(ctx))

	final, err := suite.factory.Create().TrackingRepository().Get(ctx, record.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, final.Status())
	suite.Equal("Distribution Center - Manhattan", final.CurrentLocation().Address())
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrderWithRecord() (*order.Order, *tracking.Record) {
	pickup, err := kernel.NewLocation("123 Warehouse Rd, Brooklyn, NY")
	suite.Require().NoError(err)
	delivery, err := kernel.NewLocation("350 5th Ave, Manhattan, NY")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), order.Details{
		CustomerID:      "CUST-001",
		CustomerName:    "Jane Smith",
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		PackageType:     "electronics",
		Priority:        order.PriorityStandard,
	}, time.Now().Truncate(time.Microsecond))
	suite.Require().NoError(err)

	record, err := tracking.NewRecord(testOrder)
	suite.Require().NoError(err)

	return testOrder, record
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
