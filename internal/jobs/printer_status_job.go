package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"printshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PrinterStatusJob polls every registered printer's firmware on a fixed
// interval and mirrors the reported state onto the fleet. Printers without
// a network endpoint are skipped by the refresh handler.
type PrinterStatusJob struct {
	uowFactory commands.PrinterUoWFactory
	handler    commands.RefreshPrinterStatusCommandHandler
	cron       *cron.Cron
	interval   int
	logger     *slog.Logger
}

// NewPrinterStatusJob creates a job that refreshes printer statuses every
// intervalSeconds. A non-positive interval falls back to 60 seconds.
func NewPrinterStatusJob(
	uowFactory commands.PrinterUoWFactory,
	handler commands.RefreshPrinterStatusCommandHandler,
	intervalSeconds int,
	logger *slog.Logger,
) *PrinterStatusJob {
	if intervalSeconds <= 0 {
		intervalSeconds = 60
	}
	return &PrinterStatusJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		interval:   intervalSeconds,
		logger:     logger.With("component", "printer_status_job"),
	}
}

// Start begins polling on the configured interval.
func (j *PrinterStatusJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %ds", j.interval), func() {
		j.refreshFleet(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Printer status job started", "interval_seconds", j.interval)
	return nil
}

// Stop stops the printer status job.
func (j *PrinterStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Printer status job stopped")
}

// refreshFleet probes every printer. One unreachable printer must not stop
// the rest of the fleet from being refreshed, so errors are logged per
// printer and the loop continues.
func (j *PrinterStatusJob) refreshFleet(ctx context.Context) {
	uow := j.uowFactory.Create()
	printers, err := uow.PrinterRepository().GetAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Printer status job failed to list printers", "error", err)
		return
	}

	for _, p := range printers {
		cmd, err := commands.NewRefreshPrinterStatusCommand(p.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Printer status job failed to build command", "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Printer status refresh failed",
				"printer_id", p.ID().String(), "error", err)
		}
	}
}
