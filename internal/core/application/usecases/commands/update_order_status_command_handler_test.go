package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UpdateOrderRepo struct{ mock.Mock }

func (m *UpdateOrderRepo) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *UpdateOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *UpdateOrderRepo) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *UpdateOrderRepo) GetByTrackingID(_ context.Context, _ kernel.TrackingID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *UpdateOrderRepo) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *UpdateOrderRepo) FindByDeliveryAddress(_ context.Context, _ string) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type UpdateTrackingRepo struct{ mock.Mock }

func (m *UpdateTrackingRepo) Add(_ context.Context, _ *tracking.Record) error { return nil }
func (m *UpdateTrackingRepo) Update(ctx context.Context, r *tracking.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *UpdateTrackingRepo) Get(_ context.Context, _ kernel.TrackingID) (*tracking.Record, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *UpdateTrackingRepo) GetByOrderID(ctx context.Context, id kernel.OrderID) (*tracking.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Record), args.Error(1)
}

type UpdateUoW struct{ mock.Mock }

func (m *UpdateUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *UpdateUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *UpdateUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *UpdateUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *UpdateUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type UpdateUoWFactory struct{ mock.Mock }

func (m *UpdateUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func storedOrderWithRecord(t *testing.T) (*order.Order, *tracking.Record) {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewOrderID(), kernel.NewTrackingID(), validDetails(t),
		time.Now().Add(-time.Hour))
	require.NoError(t, err)

	record, err := tracking.NewRecord(aggregate)
	require.NoError(t, err)

	return aggregate, record
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, record := storedOrderWithRecord(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.PickedUp, "Pickup Location", "")
	require.NoError(t, err)

	orderRepo := new(UpdateOrderRepo)
	trackingRepo := new(UpdateTrackingRepo)
	uow := new(UpdateUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(record, nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(UpdateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.PickedUp, aggregate.Status())
	assert.True(t, aggregate.Timeline().Contains("Picked Up"))
	assert.Equal(t, order.PickedUp, record.Status())
	assert.Equal(t, "Pickup Location", record.CurrentLocation().Address())
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_DelayedSetsReasonAndExtendsEstimate(t *testing.T) {
	ctx := t.Context()
	aggregate, record := storedOrderWithRecord(t)
	originalEstimate := aggregate.EstimatedDelivery()
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Delayed, "", "severe weather conditions")
	require.NoError(t, err)

	orderRepo := new(UpdateOrderRepo)
	trackingRepo := new(UpdateTrackingRepo)
	uow := new(UpdateUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil)
	trackingRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(record, nil)
	trackingRepo.On("Update", mock.Anything, record).Return(nil)

	factory := new(UpdateUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Delayed, aggregate.Status())
	assert.Equal(t, "severe weather conditions", aggregate.DelayReason())
	assert.Equal(t, originalEstimate.Add(order.DefaultDelayExtension), aggregate.EstimatedDelivery())
}

func TestUpdateOrderStatusCommandHandler_Handle_DelayedAppendsSingleTimelineEvent(t *testing.T) {
	ctx := t.Context()
	aggregate, record := storedOrderWithRecord(t)
	eventsBefore := len(aggregate.Timeline())
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Delayed, "", "severe weather conditions")
	require.NoError(t, err)

	orderRepo := new(UpdateOrderRepo)
	trackingRepo := new(UpdateTrackingRepo)
	uow := new(UpdateUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil)
	trackingRepo.On("GetByOrderID", mock.Anything, aggregate.ID()).Return(record, nil)
	trackingRepo.On("Update", mock.Anything, record).Return(nil)

	factory := new(UpdateUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	delayedEvents := 0
	for _, event := range aggregate.Timeline() {
		if event.Label() == order.Delayed.Label() {
			delayedEvents++
		}
	}
	assert.Equal(t, 1, delayedEvents)
	assert.Len(t, aggregate.Timeline(), eventsBefore+1)
	assert.Equal(t, "severe weather conditions", aggregate.Timeline()[len(aggregate.Timeline())-1].Location())
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Delivered, "", "")
	require.NoError(t, err)

	orderRepo := new(UpdateOrderRepo)
	uow := new(UpdateUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID))

	factory := new(UpdateUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewOrderID(), order.Unknown, "", "")
	require.Error(t, err)
}
