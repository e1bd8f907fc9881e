package commands

import (
	"context"

	"printshop/internal/pkg/errs"
)

// DeletePrinterCommandHandler handles printer removal. The active-job check
// and the delete run in the same transaction, so a job queued concurrently
// cannot slip between them.
type DeletePrinterCommandHandler struct {
	uowFactory PrinterFleetUoWFactory
}

// NewDeletePrinterCommandHandler creates a handler for printer deletion.
func NewDeletePrinterCommandHandler(uowFactory PrinterFleetUoWFactory) DeletePrinterCommandHandler {
	return DeletePrinterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the printer deletion command. A printer with queued,
// printing, or paused jobs is refused with a RefusalError naming the
// blocking reason; completed, failed, and cancelled jobs never block.
func (h *DeletePrinterCommandHandler) Handle(ctx context.Context, cmd DeletePrinterCommand) error {
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

	printerRepo := uow.PrinterRepository()
	if _, err := printerRepo.Get(ctx, cmd.PrinterID()); err != nil {
		return err
	}

	hasActive, err := uow.PrintJobRepository().ExistsActiveByPrinter(ctx, cmd.PrinterID())
	if err != nil {
		return err
	}
	if hasActive {
		return errs.NewRefusalError("delete printer",
			"printer has queued, printing, or paused jobs")
	}

	if err = printerRepo.Delete(ctx, cmd.PrinterID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
