package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"
)

// PrinterRepository defines the persistence contract for printer
// aggregates.
type PrinterRepository interface {
	// Add persists a new printer aggregate.
	Add(ctx context.Context, aggregate *printer.Printer) error

	// Update persists changes to an existing printer aggregate.
	Update(ctx context.Context, aggregate *printer.Printer) error

	// Get retrieves a printer aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such printer exists.
	Get(ctx context.Context, id kernel.UUID) (*printer.Printer, error)

	// GetAll retrieves every printer, ordered by name. Used by the status
	// poller and the fleet view.
	GetAll(ctx context.Context) ([]*printer.Printer, error)

	// Delete removes a printer. The caller must have confirmed the printer
	// has no active jobs inside the same transaction; historical jobs keep
	// their printer reference.
	Delete(ctx context.Context, id kernel.UUID) error
}
