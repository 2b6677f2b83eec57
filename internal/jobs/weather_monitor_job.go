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

// WeatherMonitorJob periodically checks weather conditions at every active
// delivery location and lets the impact dispatcher react to the verdict.
// Signal fetch happens outside any store transaction, so an unavailable
// weather source never holds a lock.
type WeatherMonitorJob struct {
	uowFactory commands.UoWFactory
	source     ports.SignalSource
	analyzer   services.WeatherAnalyzer
	dispatcher *commands.DispatchImpactActionsCommandHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewWeatherMonitorJob creates the weather monitoring job. The schedule is a
// six-field cron expression.
func NewWeatherMonitorJob(
	uowFactory commands.UoWFactory,
	source ports.SignalSource,
	analyzer services.WeatherAnalyzer,
	dispatcher *commands.DispatchImpactActionsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *WeatherMonitorJob {
	return &WeatherMonitorJob{
		uowFactory: uowFactory,
		source:     source,
		analyzer:   analyzer,
		dispatcher: dispatcher,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "weather_monitor_job"),
	}
}

// Start begins the weather monitoring cycle.
func (j *WeatherMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		defer cancel()
		j.runCycle(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Weather monitor job started", "schedule", j.schedule)
	return nil
}

// Stop stops the weather monitoring job.
func (j *WeatherMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Weather monitor job stopped")
}

func (j *WeatherMonitorJob) runCycle(ctx context.Context) {
	locations, sensitivity, err := j.collectDeliveryLocations(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Weather monitor cycle failed to read active orders", "error", err)
		return
	}
	if len(locations) == 0 {
		return
	}

	var verdict signal.WeatherVerdict
	readings, err := j.source.WeatherConditions(ctx, locations)
	if err != nil {
		// Degraded cycle: no signal data, the dispatcher records it and takes
		// no action.
		j.logger.WarnContext(ctx, "Weather source unavailable, degrading cycle", "error", err)
		verdict = j.analyzer.Degraded()
	} else {
		verdict = j.analyzer.Analyze(readings, sensitivity)
	}

	cmd, err := commands.NewDispatchWeatherImpactCommand(verdict)
	if err != nil {
		j.logger.ErrorContext(ctx, "Weather monitor cycle failed", "error", err)
		return
	}

	result, err := j.dispatcher.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Weather impact dispatch failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Weather monitor cycle completed",
		"locations", len(locations),
		"highImpact", verdict.HasHighImpact,
		"actions", result.Actions,
		"updatedOrders", len(result.UpdatedOrderIDs),
		"failedOrders", len(result.Failed),
	)
}

// collectDeliveryLocations reads the delivery addresses of all active orders
// in a read-only pass. The batch sensitivity is electronics when any active
// shipment carries electronics.
func (j *WeatherMonitorJob) collectDeliveryLocations(ctx context.Context) ([]string, string, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, "", err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	active, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, "", err
	}

	sensitivity := "standard"
	seen := make(map[string]struct{}, len(active))
	locations := make([]string, 0, len(active))
	for _, o := range active {
		if o.Details().PackageType == signal.SensitivityElectronics {
			sensitivity = signal.SensitivityElectronics
		}

		address := o.Details().DeliveryAddress.Address()
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		locations = append(locations, address)
	}

	return locations, sensitivity, nil
}
