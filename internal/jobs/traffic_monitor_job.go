package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/signal"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TrafficMonitorJob periodically checks traffic along the active delivery
// route and reports whether it should be re-ordered. Traffic verdicts never
// mutate orders; the dispatcher only confirms or optimizes the route.
type TrafficMonitorJob struct {
	uowFactory commands.UoWFactory
	source     ports.SignalSource
	analyzer   services.TrafficAnalyzer
	dispatcher *commands.DispatchImpactActionsCommandHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTrafficMonitorJob creates the traffic monitoring job. The schedule is a
// six-field cron expression.
func NewTrafficMonitorJob(
	uowFactory commands.UoWFactory,
	source ports.SignalSource,
	analyzer services.TrafficAnalyzer,
	dispatcher *commands.DispatchImpactActionsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TrafficMonitorJob {
	return &TrafficMonitorJob{
		uowFactory: uowFactory,
		source:     source,
		analyzer:   analyzer,
		dispatcher: dispatcher,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "traffic_monitor_job"),
	}
}

// Start begins the traffic monitoring cycle.
func (j *TrafficMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		defer cancel()
		j.runCycle(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Traffic monitor job started", "schedule", j.schedule)
	return nil
}

// Stop stops the traffic monitoring job.
func (j *TrafficMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Traffic monitor job stopped")
}

func (j *TrafficMonitorJob) runCycle(ctx context.Context) {
	waypoints, err := j.collectRouteWaypoints(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Traffic monitor cycle failed to read active orders", "error", err)
		return
	}
	if len(waypoints) == 0 {
		return
	}

	var verdict signal.TrafficVerdict
	readings, err := j.source.TrafficConditions(ctx, waypoints)
	if err != nil {
		// Degraded cycle: no signal data, the dispatcher records it and takes
		// no action.
		j.logger.WarnContext(ctx, "Traffic source unavailable, degrading cycle", "error", err)
		verdict = j.analyzer.Degraded()
	} else {
		verdict = j.analyzer.Analyze(readings)
	}

	cmd, err := commands.NewDispatchTrafficImpactCommand(verdict)
	if err != nil {
		j.logger.ErrorContext(ctx, "Traffic monitor cycle failed", "error", err)
		return
	}

	result, err := j.dispatcher.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Traffic impact dispatch failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Traffic monitor cycle completed",
		"waypoints", len(waypoints),
		"totalDelayMinutes", verdict.TotalDelayMinutes,
		"actions", result.Actions,
	)
}

// collectRouteWaypoints reads the pickup and delivery addresses of all active
// orders in a read-only pass, deduplicated in encounter order.
func (j *TrafficMonitorJob) collectRouteWaypoints(ctx context.Context) ([]string, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	active, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, 2*len(active))
	waypoints := make([]string, 0, 2*len(active))
	add := func(address string) {
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		waypoints = append(waypoints, address)
	}

	for _, o := range active {
		add(o.Details().PickupAddress.Address())
		add(o.Details().DeliveryAddress.Address())
	}

	return waypoints, nil
}
