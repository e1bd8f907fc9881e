package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printjob"
)

// PrintJobRepository defines the persistence contract for print job
// aggregates.
type PrintJobRepository interface {
	// Add persists a new print job aggregate.
	Add(ctx context.Context, aggregate *printjob.PrintJob) error

	// Update persists changes to an existing print job aggregate.
	Update(ctx context.Context, aggregate *printjob.PrintJob) error

	// Get retrieves a print job aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such job exists.
	Get(ctx context.Context, id kernel.UUID) (*printjob.PrintJob, error)

	// ExistsActiveByPrinter reports whether the printer has any job in
	// queued, printing, or paused status. Active jobs block printer
	// deletion.
	ExistsActiveByPrinter(ctx context.Context, printerID kernel.UUID) (bool, error)
}
