package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPrintersQueryHandler retrieves the printer fleet from the database,
// ordered by name.
type GetAllPrintersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPrintersQueryHandler creates a handler for fleet queries.
// Requires a GORM database connection for query execution.
func NewGetAllPrintersQueryHandler(db *gorm.DB) GetAllPrintersQueryHandler {
	return GetAllPrintersQueryHandler{db: db}
}

// Handle executes the query to retrieve all printers.
func (h GetAllPrintersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPrintersQuery,
) ([]GetAllPrintersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	printers := make([]GetAllPrintersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			model,
			manufacturer,
			build_volume_x,
			build_volume_y,
			build_volume_z,
			status,
			ip_address
		FROM printers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var printerResp GetAllPrintersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&printerResp.Name,
			&printerResp.Model,
			&printerResp.Manufacturer,
			&printerResp.BuildVolumeX,
			&printerResp.BuildVolumeY,
			&printerResp.BuildVolumeZ,
			&status,
			&printerResp.IPAddress,
		)
		if err != nil {
			return nil, err
		}

		printerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		printerResp.ID = printerID

		printerResp.Status = printer.Status(status)
		if err = printerResp.Status.Validate(); err != nil {
			return nil, err
		}

		printers = append(printers, printerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return printers, nil
}
