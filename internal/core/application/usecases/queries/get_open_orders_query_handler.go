package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves in-flight orders from the database.
// Filters out delivered, cancelled, and refunded orders to provide current
// workload visibility.
//
// Example:
//
//	handler := NewGetOpenOrdersQueryHandler(db)
//	query := NewGetOpenOrdersQuery()
//
//	openOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
//
//	if len(openOrders) > 0 {
//	    fmt.Printf("%d orders in flight\n", len(openOrders))
//	}
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders. An order is open
// until it reaches delivered, cancelled, or refunded. Results are ordered by
// order date so the longest-waiting order comes first.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			status,
			payment_status,
			total_amount,
			order_date
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY order_date
	`, order.Delivered, order.Cancelled, order.Refunded).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOpenOrdersQueryResponse
		var id, customerID uuid.UUID
		var status, paymentStatus int
		var totalAmount float64

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&customerID,
			&status,
			&paymentStatus,
			&totalAmount,
			&orderResp.OrderDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = orderCustomerID

		orderResp.Status = order.Status(status)
		if err = orderResp.Status.Validate(); err != nil {
			return nil, err
		}
		orderResp.PaymentStatus = order.PaymentStatus(paymentStatus)
		if err = orderResp.PaymentStatus.Validate(); err != nil {
			return nil, err
		}

		total, moneyErr := kernel.NewMoney(totalAmount)
		if moneyErr != nil {
			return nil, moneyErr
		}
		orderResp.TotalAmount = total

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
