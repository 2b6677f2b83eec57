package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/tracking"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order aggregate and its tracking record in a single transaction
// so a tracking number never points at a missing order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     slog.Default().With("component", "create-order"),
	}
}

// Handle processes the order creation command.
// The order starts in "created" status with the placed event on its timeline,
// and the tracking record starts at the processing center.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.TrackingID(), cmd.Details(), time.Now())
	if err != nil {
		return err
	}

	record, err := tracking.NewRecord(newOrder)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("order created",
		"orderId", newOrder.ID().String(),
		"trackingId", newOrder.TrackingID().String(),
		"status", newOrder.Status().String(),
	)

	return nil
}
