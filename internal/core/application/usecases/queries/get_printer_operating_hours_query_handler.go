package queries

import (
	"context"
	"math"

	"printshop/internal/core/domain/model/printjob"

	"gorm.io/gorm"
)

// GetPrinterOperatingHoursQueryHandler sums recorded print time straight from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern; the aggregation never loads job aggregates into memory.
//
// Example:
//
//	handler := NewGetPrinterOperatingHoursQueryHandler(db)
//	query, _ := NewGetPrinterOperatingHoursQuery(printerID)
//
//	hours, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get operating hours: %v", err)
//	    return err
//	}
type GetPrinterOperatingHoursQueryHandler struct {
	db *gorm.DB
}

// NewGetPrinterOperatingHoursQueryHandler creates a handler for operating
// hours queries. Requires a GORM database connection for query execution.
func NewGetPrinterOperatingHoursQueryHandler(db *gorm.DB) GetPrinterOperatingHoursQueryHandler {
	return GetPrinterOperatingHoursQueryHandler{db: db}
}

// Handle sums the actual minutes of the printer's completed jobs and converts
// the total to hours, rounded half away from zero to one decimal place.
// A printer with no completed history yields 0.0.
func (h GetPrinterOperatingHoursQueryHandler) Handle(
	ctx context.Context,
	query GetPrinterOperatingHoursQuery,
) (GetPrinterOperatingHoursQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPrinterOperatingHoursQueryResponse{}, err
	}

	var totalMinutes int64
	var completedJobs int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(actual_minutes), 0),
			COUNT(*)
		FROM print_jobs
		WHERE printer_id = ? AND status = ?
	`, query.PrinterID().Bytes(), printjob.Completed).Row()

	if err := row.Scan(&totalMinutes, &completedJobs); err != nil {
		return GetPrinterOperatingHoursQueryResponse{}, err
	}

	return GetPrinterOperatingHoursQueryResponse{
		PrinterID:     query.PrinterID(),
		TotalHours:    math.Round(float64(totalMinutes)/60*10) / 10,
		CompletedJobs: completedJobs,
	}, nil
}
