package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetPrinterOperatingHoursQueryIsNotConstructed = errors.New(
		"GetPrinterOperatingHoursQuery must be created via NewGetPrinterOperatingHoursQuery constructor",
	)
)

// GetPrinterOperatingHoursQuery aggregates the total operating time of a
// single printer from its completed print job history.
//
// Example:
//
//	query, err := NewGetPrinterOperatingHoursQuery(printerID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetPrinterOperatingHoursQueryHandler(db)
//
//	hours, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get operating hours: %w", err)
//	}
//	fmt.Printf("Printer has run for %.1f hours\n", hours.TotalHours)
type GetPrinterOperatingHoursQuery struct {
	printerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPrinterOperatingHoursQuery creates a query for the given printer.
// The printer ID must be a constructed UUID.
func NewGetPrinterOperatingHoursQuery(printerID kernel.UUID) (GetPrinterOperatingHoursQuery, error) {
	if err := printerID.Validate(); err != nil {
		return GetPrinterOperatingHoursQuery{}, err
	}
	return GetPrinterOperatingHoursQuery{
		printerID: printerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PrinterID returns the printer whose history is aggregated.
func (q GetPrinterOperatingHoursQuery) PrinterID() kernel.UUID {
	return q.printerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPrinterOperatingHoursQueryIsNotConstructed if validation fails.
func (q GetPrinterOperatingHoursQuery) Validate() error {
	return q.guard.Validate(ErrGetPrinterOperatingHoursQueryIsNotConstructed)
}

// GetPrinterOperatingHoursQueryResponse is the aggregated operating time of
// one printer. Hours are derived from recorded actual minutes of completed
// jobs only; queued, running, failed, and cancelled jobs contribute nothing.
type GetPrinterOperatingHoursQueryResponse struct {
	PrinterID kernel.UUID

	// TotalHours is rounded to one decimal place. A printer with no
	// completed jobs reports 0.0, not an error.
	TotalHours float64

	// CompletedJobs is the number of jobs that produced the total.
	CompletedJobs int
}
