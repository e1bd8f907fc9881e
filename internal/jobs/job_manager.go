package jobs

import (
	"fmt"
	"log/slog"

	"printshop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	printerStatusJob *PrinterStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	printerUoWFactory commands.PrinterUoWFactory,
	refreshStatusHandler commands.RefreshPrinterStatusCommandHandler,
	pollIntervalSeconds int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		printerStatusJob: NewPrinterStatusJob(printerUoWFactory, refreshStatusHandler, pollIntervalSeconds, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.printerStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start printer status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.printerStatusJob.Stop()
}
