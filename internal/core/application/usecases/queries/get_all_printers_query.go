package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/printer"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetAllPrintersQueryIsNotConstructed = errors.New(
		"GetAllPrintersQuery must be created via NewGetAllPrintersQuery constructor",
	)
)

// GetAllPrintersQuery retrieves the whole fleet for the printers view:
// every registered printer with its current status and build volume.
type GetAllPrintersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPrintersQuery creates a query to retrieve all printers.
func NewGetAllPrintersQuery() GetAllPrintersQuery {
	return GetAllPrintersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPrintersQueryIsNotConstructed if validation fails.
func (q GetAllPrintersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPrintersQueryIsNotConstructed)
}

// GetAllPrintersQueryResponse is one printer in the fleet listing.
type GetAllPrintersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Model        string
	Manufacturer string

	BuildVolumeX int
	BuildVolumeY int
	BuildVolumeZ int

	Status    printer.Status
	IPAddress string
}
