package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrRefreshPrinterStatusCommandIsNotConstructed = errors.New(
	"RefreshPrinterStatusCommand must be created via NewRefreshPrinterStatusCommand constructor",
)

// RefreshPrinterStatusCommand represents a request to probe a printer's
// firmware API and mirror the reported state onto the aggregate.
type RefreshPrinterStatusCommand struct { //nolint:recvcheck //using for validation
	printerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefreshPrinterStatusCommand creates a command to refresh one
// printer's status from its firmware.
func NewRefreshPrinterStatusCommand(printerID kernel.UUID) (RefreshPrinterStatusCommand, error) {
	command := RefreshPrinterStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPrinterID(printerID); err != nil {
		return RefreshPrinterStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshPrinterStatusCommand) Validate() error {
	return c.guard.Validate(ErrRefreshPrinterStatusCommandIsNotConstructed)
}

// PrinterID returns the printer to probe.
func (c RefreshPrinterStatusCommand) PrinterID() kernel.UUID {
	return c.printerID
}

func (c *RefreshPrinterStatusCommand) setPrinterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.printerID = id
	return nil
}
