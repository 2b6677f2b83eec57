package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles order status mutations.
// This is the only authoritative write path for lifecycle status: both the
// autonomous dispatcher and the HTTP adapter go through it, so the row lock
// taken by the repository Get serializes concurrent updates per order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     slog.Default().With("component", "update-order-status"),
	}
}

// Handle processes the status update command.
// Appends the timeline event, applies the delay extension when moving to
// Delayed, and refreshes the tracking record inside the same transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	priorStatus := aggregate.Status()
	now := time.Now()

	// Delay appends its own timeline event, so a delayed-with-reason update
	// must not also call ChangeStatus: one transition, one event.
	if cmd.NewStatus() == order.Delayed && cmd.DelayReason() != "" {
		if err = aggregate.Delay(cmd.DelayReason(), order.DefaultDelayExtension, now); err != nil {
			return err
		}
	} else if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.Location(), now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := uow.TrackingRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var newLocation *kernel.Location
	if cmd.Location() != "" {
		location, locErr := kernel.NewLocation(cmd.Location())
		if locErr != nil {
			return locErr
		}
		newLocation = &location
	}

	if err = record.Refresh(aggregate, newLocation); err != nil {
		return err
	}

	if err = uow.TrackingRepository().Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("order status updated",
		"orderId", aggregate.ID().String(),
		"priorStatus", priorStatus.String(),
		"newStatus", aggregate.Status().String(),
		"timestamp", now,
	)

	return nil
}
