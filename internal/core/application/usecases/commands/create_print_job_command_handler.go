package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/printjob"
)

// CreatePrintJobCommandHandler handles queueing a print job: the printer
// must exist, the order must exist when linked, and the job is persisted in
// Queued status.
type CreatePrintJobCommandHandler struct {
	uowFactory PrintJobUoWFactory
}

// NewCreatePrintJobCommandHandler creates a handler for print job creation.
func NewCreatePrintJobCommandHandler(uowFactory PrintJobUoWFactory) CreatePrintJobCommandHandler {
	return CreatePrintJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the print job creation command.
func (h *CreatePrintJobCommandHandler) Handle(ctx context.Context, cmd CreatePrintJobCommand) error {
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

	if _, err := uow.PrinterRepository().Get(ctx, cmd.PrinterID()); err != nil {
		return err
	}
	if orderID := cmd.OrderID(); orderID != nil {
		if _, err := uow.OrderRepository().Get(ctx, *orderID); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	job, err := printjob.NewPrintJob(cmd.JobID(), cmd.JobName(), cmd.PrinterID(), cmd.EstimatedMinutes(), now)
	if err != nil {
		return err
	}
	if orderID := cmd.OrderID(); orderID != nil {
		if err = job.LinkOrder(*orderID); err != nil {
			return err
		}
	}
	job.SetPrintParameters(cmd.FilePath(), cmd.Material(), cmd.Color(), cmd.LayerHeight(), cmd.Infill())

	if err = uow.PrintJobRepository().Add(ctx, job); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
