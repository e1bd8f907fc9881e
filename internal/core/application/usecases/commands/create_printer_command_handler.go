package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/printer"
)

// CreatePrinterCommandHandler handles the business logic for registering a
// printer in the fleet.
type CreatePrinterCommandHandler struct {
	uowFactory PrinterUoWFactory
}

// NewCreatePrinterCommandHandler creates a handler for printer registration.
func NewCreatePrinterCommandHandler(uowFactory PrinterUoWFactory) CreatePrinterCommandHandler {
	return CreatePrinterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the printer creation command. New printers start Idle.
func (h *CreatePrinterCommandHandler) Handle(ctx context.Context, cmd CreatePrinterCommand) error {
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

	now := time.Now().UTC()
	printerEntity, err := printer.NewPrinter(
		cmd.PrinterID(), cmd.Name(), cmd.Model(), cmd.Manufacturer(),
		cmd.BuildVolumeX(), cmd.BuildVolumeY(), cmd.BuildVolumeZ(), now)
	if err != nil {
		return err
	}
	if cmd.IPAddress() != "" || cmd.APIKey() != "" {
		printerEntity.SetNetworkEndpoint(cmd.IPAddress(), cmd.APIKey(), now)
	}

	if err = uow.PrinterRepository().Add(ctx, printerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
