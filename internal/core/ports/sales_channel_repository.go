package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/saleschannel"
)

// SalesChannelRepository defines the persistence contract for sales channel
// aggregates.
type SalesChannelRepository interface {
	// Add persists a new sales channel aggregate.
	Add(ctx context.Context, aggregate *saleschannel.SalesChannel) error

	// Update persists changes to an existing sales channel aggregate.
	Update(ctx context.Context, aggregate *saleschannel.SalesChannel) error

	// Get retrieves a sales channel aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such channel exists.
	Get(ctx context.Context, id kernel.UUID) (*saleschannel.SalesChannel, error)
}
