package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their line items; both always travel together.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// Returns a ConflictError when the order number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its business order number.
	// Returns an ObjectNotFoundError when no such order exists.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// ExistsByNumber reports whether an order with the given business
	// number already exists. Used as the fast pre-check before Add; the
	// unique constraint remains the backstop.
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
