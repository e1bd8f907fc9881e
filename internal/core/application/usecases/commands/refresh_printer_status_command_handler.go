package commands

import (
	"context"
	"errors"
	"time"

	"printshop/internal/core/domain/model/printer"
	"printshop/internal/core/ports"
)

// defaultProbeTimeout bounds a single firmware probe.
const defaultProbeTimeout = 5 * time.Second

// RefreshPrinterStatusCommandHandler probes a printer's firmware through
// the PrinterProbe port and mirrors the reported state onto the aggregate.
//
// Outcomes:
//   - successful probe: the printer takes the reported status
//   - probe timeout or transport failure: the printer is marked Offline
//   - caller cancellation: nothing is applied, the error is returned
//   - printer without a network endpoint: skipped, nothing to probe
type RefreshPrinterStatusCommandHandler struct {
	uowFactory   PrinterUoWFactory
	probe        ports.PrinterProbe
	probeTimeout time.Duration
}

// NewRefreshPrinterStatusCommandHandler creates a handler for firmware
// status refreshes. A non-positive timeout falls back to the default.
func NewRefreshPrinterStatusCommandHandler(uowFactory PrinterUoWFactory, probe ports.PrinterProbe, probeTimeout time.Duration) RefreshPrinterStatusCommandHandler {
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}
	return RefreshPrinterStatusCommandHandler{
		uowFactory:   uowFactory,
		probe:        probe,
		probeTimeout: probeTimeout,
	}
}

// Handle processes the status refresh command.
func (h *RefreshPrinterStatusCommandHandler) Handle(ctx context.Context, cmd RefreshPrinterStatusCommand) error {
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
	printerEntity, err := printerRepo.Get(ctx, cmd.PrinterID())
	if err != nil {
		return err
	}
	if printerEntity.IPAddress() == "" {
		return nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	target := printerEntity.Status()
	result, probeErr := h.probe.Probe(probeCtx, printerEntity)
	switch {
	case probeErr == nil:
		target = result.Status
	case errors.Is(probeErr, context.Canceled):
		// The caller gave up; apply nothing.
		return probeErr
	default:
		// Timeouts and transport failures alike: a printer that cannot be
		// reached, or answers with something unreadable, is offline as far
		// as the ledger is concerned.
		target = printer.Offline
	}

	if target == printerEntity.Status() {
		return nil
	}

	if err = printerEntity.ChangeStatus(target, time.Now().UTC()); err != nil {
		return err
	}
	if err = printerRepo.Update(ctx, printerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
