package queries

import (
	"context"
	"database/sql"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printjob"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActivePrintJobsQueryHandler retrieves the active job queue from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
//
// Example:
//
//	handler := NewGetActivePrintJobsQueryHandler(db)
//	query, _ := NewGetActivePrintJobsQuery(nil, nil)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active jobs: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d jobs on the floor\n", len(jobs))
type GetActivePrintJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetActivePrintJobsQueryHandler creates a handler for active job queries.
// Requires a GORM database connection for query execution.
func NewGetActivePrintJobsQueryHandler(db *gorm.DB) GetActivePrintJobsQueryHandler {
	return GetActivePrintJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve queued, printing, and paused jobs,
// applying the optional printer and order filters. Results are ordered by
// creation time so the oldest waiting job comes first.
func (h GetActivePrintJobsQueryHandler) Handle(
	ctx context.Context,
	query GetActivePrintJobsQuery,
) ([]GetActivePrintJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			job_name,
			printer_id,
			order_id,
			status,
			progress,
			estimated_minutes,
			started_at
		FROM print_jobs
		WHERE status IN (?, ?, ?)
	`
	args := []any{printjob.Queued, printjob.Printing, printjob.Paused}

	if query.PrinterID() != nil {
		sqlText += " AND printer_id = ?"
		args = append(args, query.PrinterID().Bytes())
	}
	if query.OrderID() != nil {
		sqlText += " AND order_id = ?"
		args = append(args, query.OrderID().Bytes())
	}
	sqlText += " ORDER BY created_at"

	jobs := make([]GetActivePrintJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var job GetActivePrintJobsQueryResponse
		var id, printerID uuid.UUID
		var orderID uuid.NullUUID
		var status int
		var startedAt sql.NullTime

		err = rows.Scan(
			&id,
			&job.JobName,
			&printerID,
			&orderID,
			&status,
			&job.Progress,
			&job.EstimatedMinutes,
			&startedAt,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		job.ID = jobID

		jobPrinterID, idErr := kernel.UUIDFromBytes(printerID[:])
		if idErr != nil {
			return nil, idErr
		}
		job.PrinterID = jobPrinterID

		if orderID.Valid {
			jobOrderID, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			job.OrderID = &jobOrderID
		}

		job.Status = printjob.Status(status)
		if err = job.Status.Validate(); err != nil {
			return nil, err
		}

		if startedAt.Valid {
			started := startedAt.Time
			job.StartedAt = &started
		}

		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
