package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// cycleTimeout bounds one monitoring cycle end to end, including the external
// signal fetch, so a hung source cannot pile up overlapping cycles.
const cycleTimeout = 2 * time.Minute

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	weatherMonitorJob *WeatherMonitorJob
	trafficMonitorJob *TrafficMonitorJob
}

// NewJobManager creates a job manager with both monitoring jobs wired to the
// same signal source and impact dispatcher.
func NewJobManager(
	uowFactory commands.UoWFactory,
	source ports.SignalSource,
	dispatcher *commands.DispatchImpactActionsCommandHandler,
	weatherSchedule string,
	trafficSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		weatherMonitorJob: NewWeatherMonitorJob(
			uowFactory, source, services.NewWeatherAnalyzer(), dispatcher, weatherSchedule, logger),
		trafficMonitorJob: NewTrafficMonitorJob(
			uowFactory, source, services.NewTrafficAnalyzer(), dispatcher, trafficSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.weatherMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start weather monitor job: %w", err)
	}

	if err := jm.trafficMonitorJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.weatherMonitorJob.Stop()
		return fmt.Errorf("failed to start traffic monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.weatherMonitorJob.Stop()
	jm.trafficMonitorJob.Stop()
}
