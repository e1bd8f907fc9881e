package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves the customer list from the database,
// ordered by last then first name.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer listing
// queries. Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetAllCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone,
			city,
			country
		FROM customers
		ORDER BY last_name, first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var customerResp GetAllCustomersQueryResponse
		var id uuid.UUID
		var email *string

		err = rows.Scan(
			&id,
			&customerResp.FirstName,
			&customerResp.LastName,
			&email,
			&customerResp.Phone,
			&customerResp.City,
			&customerResp.Country,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customerResp.ID = customerID

		if email != nil {
			customerResp.Email = *email
		}

		customers = append(customers, customerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
