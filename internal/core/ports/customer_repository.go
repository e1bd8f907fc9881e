// Package ports defines the outbound contracts of the order ledger:
// repository interfaces for each aggregate, the unit-of-work boundary, and
// the printer firmware probe. These interfaces sit between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate.
	// Returns a ConflictError when the email is already taken.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// ExistsByEmail reports whether a customer with the given email already
	// exists. Empty emails never collide.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
