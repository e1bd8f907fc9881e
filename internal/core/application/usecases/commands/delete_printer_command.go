package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrDeletePrinterCommandIsNotConstructed = errors.New(
	"DeletePrinterCommand must be created via NewDeletePrinterCommand constructor",
)

// DeletePrinterCommand represents a request to remove a printer from the
// fleet. Deletion is refused while the printer has active jobs; historical
// jobs keep their printer reference.
type DeletePrinterCommand struct { //nolint:recvcheck //using for validation
	printerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePrinterCommand creates a command to delete a printer.
func NewDeletePrinterCommand(printerID kernel.UUID) (DeletePrinterCommand, error) {
	command := DeletePrinterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPrinterID(printerID); err != nil {
		return DeletePrinterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePrinterCommand) Validate() error {
	return c.guard.Validate(ErrDeletePrinterCommandIsNotConstructed)
}

// PrinterID returns the printer to delete.
func (c DeletePrinterCommand) PrinterID() kernel.UUID {
	return c.printerID
}

func (c *DeletePrinterCommand) setPrinterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.printerID = id
	return nil
}
