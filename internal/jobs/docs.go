// Package jobs provides scheduled background tasks for the print shop ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for running the printer fleet.
//
// # Available Jobs
//
// 1. PrinterStatusJob - Polls every printer's firmware on a fixed interval
// and mirrors the reported state onto the fleet
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(printerUoWFactory, refreshStatusHandler, 60, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The status job uses an "@every Ns" schedule where N is the configured
// poll interval in seconds (60 by default). Polling more often than the
// firmware refreshes its own state only produces no-op updates.
//
// # Error Handling
//
// - A printer that cannot be probed is logged and skipped; the rest of the
// fleet is still refreshed in the same run
// - Probe timeouts are not errors at this level: the refresh handler marks
// the printer Offline and the job moves on
// - Failed job starts will stop any already running jobs
package jobs
