package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetAllCustomersQueryIsNotConstructed = errors.New(
		"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
	)
)

// GetAllCustomersQuery retrieves every customer for the customers view.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCustomersQueryIsNotConstructed if validation fails.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetAllCustomersQueryResponse is one customer in the listing.
type GetAllCustomersQueryResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	City      string
	Country   string
}
