package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery retrieves all orders still being worked: everything not
// yet delivered, cancelled, or refunded.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	handler := NewGetOpenOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches the shop's current workload.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one in-flight order.
type GetOpenOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	CustomerID  kernel.UUID

	Status        order.Status
	PaymentStatus order.PaymentStatus

	TotalAmount kernel.Money
	OrderDate   time.Time
}
