// Package jobs provides the scheduled monitoring cycles of the logistics
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The jobs are the autonomous trigger of the system: they observe external
// conditions and hand verdicts to the impact dispatcher, which decides
// whether orders must change.
//
// # Available Jobs
//
// 1. WeatherMonitorJob - fetches weather readings for every active delivery
// location, classifies them, and dispatches the verdict
// 2. TrafficMonitorJob - fetches traffic readings along the active route and
// dispatches the verdict (advisory only, never mutates orders)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, signalSource, dispatcher,
//		weatherSchedule, trafficSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions supplied by configuration, e.g.
// "0 */5 * * * *" for every five minutes.
//
// # Error Handling
//
// A cycle that cannot reach its signal source is degraded: it logs a warning
// and dispatches a degraded verdict, which takes no action, leaving the next
// cycle to retry. Every cycle runs under a bounded context so a hung source
// cannot stall the scheduler. Store read failures and
// dispatch failures are logged as errors. Per-order failures inside a
// dispatch never abort the cycle; the dispatcher itemizes them in its result.
package jobs
