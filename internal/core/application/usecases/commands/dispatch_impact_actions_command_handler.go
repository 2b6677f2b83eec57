package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/signal"
)

// Actions reported by the dispatcher. No-action verdicts still report what
// the system decided, so monitoring cycles leave an audit trail.
const (
	ActionOrdersDelayed       = "orders_delayed"
	ActionMonitoringContinued = "monitoring_continued"
	ActionRouteOptimized      = "route_optimized"
	ActionRouteConfirmed      = "route_confirmed"
	ActionSignalDegraded      = "signal_degraded"
)

// DelayReasonSevereWeather is the reason code recorded on orders delayed by a
// weather verdict.
const DelayReasonSevereWeather = "severe weather conditions"

// OrderFailure records one order the fan-out could not update.
type OrderFailure struct {
	OrderID kernel.OrderID
	Err     error
}

// ImpactDispatchResult itemizes what the dispatcher did with a verdict.
// Fan-out is best effort with no compensating rollback, so partial outcomes
// are the normal case and are never collapsed into a single flag.
type ImpactDispatchResult struct {
	UpdatedOrderIDs  []kernel.OrderID
	Failed           []OrderFailure
	NotifiedOrderIDs []kernel.OrderID
	Actions          []string
}

// NotificationDispatcher sends a customer notification.
// Implemented by DispatchNotificationCommandHandler.
type NotificationDispatcher interface {
	Handle(ctx context.Context, cmd DispatchNotificationCommand) (NotificationResult, error)
}

// StatusUpdater applies an authoritative status mutation to one order.
// Implemented by UpdateOrderStatusCommandHandler, so every dispatcher-driven
// delay goes through the same per-order transaction as a manual update.
type StatusUpdater interface {
	Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error
}

// DispatchImpactActionsCommandHandler turns impact verdicts into autonomous
// order mutations. Weather verdicts delay every active order delivering into
// an affected location; traffic verdicts only confirm or optimize the route.
type DispatchImpactActionsCommandHandler struct {
	uowFactory UoWFactory
	updater    StatusUpdater
	notifier   NotificationDispatcher
	logger     *slog.Logger
}

// NewDispatchImpactActionsCommandHandler creates the autonomous action
// dispatcher.
func NewDispatchImpactActionsCommandHandler(
	uowFactory UoWFactory,
	updater StatusUpdater,
	notifier NotificationDispatcher,
) DispatchImpactActionsCommandHandler {
	return DispatchImpactActionsCommandHandler{
		uowFactory: uowFactory,
		updater:    updater,
		notifier:   notifier,
		logger:     slog.Default().With("component", "impact-dispatcher"),
	}
}

// Handle processes an impact verdict.
// Matching orders are collected in a read-only pass first; each mutation then
// runs in its own transaction so one failing order never blocks the rest.
func (h *DispatchImpactActionsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchImpactActionsCommand,
) (ImpactDispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImpactDispatchResult{}, err
	}

	if verdict := cmd.TrafficVerdict(); verdict != nil {
		return h.handleTraffic(*verdict), nil
	}

	return h.handleWeather(ctx, *cmd.WeatherVerdict())
}

func (h *DispatchImpactActionsCommandHandler) handleTraffic(verdict signal.TrafficVerdict) ImpactDispatchResult {
	if verdict.Degraded {
		h.logger.Warn("traffic signal unavailable, no action taken")
		return ImpactDispatchResult{Actions: []string{ActionSignalDegraded}}
	}

	if !verdict.RequiresAction() {
		return ImpactDispatchResult{Actions: []string{ActionRouteConfirmed}}
	}

	h.logger.Info("route optimization recommended",
		"totalDelayMinutes", verdict.TotalDelayMinutes,
		"optimizedRoute", verdict.OptimizedRoute,
	)

	return ImpactDispatchResult{Actions: []string{ActionRouteOptimized}}
}

func (h *DispatchImpactActionsCommandHandler) handleWeather(
	ctx context.Context,
	verdict signal.WeatherVerdict,
) (ImpactDispatchResult, error) {
	if verdict.Degraded {
		h.logger.Warn("weather signal unavailable, no action taken")
		return ImpactDispatchResult{Actions: []string{ActionSignalDegraded}}, nil
	}

	if !verdict.RequiresAction() {
		return ImpactDispatchResult{Actions: []string{ActionMonitoringContinued}}, nil
	}

	affected, err := h.collectAffectedOrders(ctx, verdict.AffectedLocations)
	if err != nil {
		return ImpactDispatchResult{}, err
	}

	result := ImpactDispatchResult{Actions: []string{ActionOrdersDelayed}}

	for _, aggregate := range affected {
		if updateErr := h.delayOrder(ctx, aggregate.ID()); updateErr != nil {
			h.logger.Warn("failed to delay order",
				"orderId", aggregate.ID().String(),
				"error", updateErr,
			)
			result.Failed = append(result.Failed, OrderFailure{OrderID: aggregate.ID(), Err: updateErr})
			continue
		}

		result.UpdatedOrderIDs = append(result.UpdatedOrderIDs, aggregate.ID())

		if h.notifyDelay(ctx, aggregate) {
			result.NotifiedOrderIDs = append(result.NotifiedOrderIDs, aggregate.ID())
		}
	}

	return result, nil
}

// collectAffectedOrders matches active orders against affected locations in a
// read-only transaction. No lock is held afterwards; mutations reacquire
// per-order locks one at a time.
func (h *DispatchImpactActionsCommandHandler) collectAffectedOrders(
	ctx context.Context,
	locations []string,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	seen := make(map[string]struct{})
	var affected []*order.Order

	for _, location := range locations {
		matches, err := uow.OrderRepository().FindByDeliveryAddress(ctx, location)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if _, ok := seen[match.ID().String()]; ok {
				continue
			}
			seen[match.ID().String()] = struct{}{}
			affected = append(affected, match)
		}
	}

	return affected, nil
}

func (h *DispatchImpactActionsCommandHandler) delayOrder(ctx context.Context, orderID kernel.OrderID) error {
	updateCmd, err := NewUpdateOrderStatusCommand(orderID, order.Delayed, "", DelayReasonSevereWeather)
	if err != nil {
		return err
	}

	return h.updater.Handle(ctx, updateCmd)
}

func (h *DispatchImpactActionsCommandHandler) notifyDelay(ctx context.Context, aggregate *order.Order) bool {
	notifyCmd, err := NewDispatchNotificationCommand(
		aggregate.ID(),
		aggregate.Details().CustomerID,
		notification.TypeDeliveryDelayed,
		notification.TemplateData{
			Reason:               DelayReasonSevereWeather,
			NewEstimatedDelivery: aggregate.EstimatedDelivery().Add(order.DefaultDelayExtension).Format("2006-01-02 15:04"),
		},
	)
	if err != nil {
		h.logger.Warn("failed to build delay notification",
			"orderId", aggregate.ID().String(),
			"error", err,
		)
		return false
	}

	if _, notifyErr := h.notifier.Handle(ctx, notifyCmd); notifyErr != nil {
		h.logger.Warn("failed to notify customer of delay",
			"orderId", aggregate.ID().String(),
			"error", notifyErr,
		)
		return false
	}

	return true
}
