package order_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-2024-001",
		kernel.NewUUID(),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_unpaid_order_with_zero_amounts", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, "ORD-2024-001", o.Number())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
		assert.Equal(t, 0.0, o.Amounts().Total.Amount())
		assert.Nil(t, o.ShippedAt())
		assert.Nil(t, o.DeliveredAt())
		assert.False(t, o.InvoiceGenerated())
		assert.False(t, o.ShippingLabelGenerated())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_empty_order_number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", kernel.NewUUID(), time.Now(), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_zero_customer_id", func(t *testing.T) {
		var missing kernel.UUID
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", missing, time.Now(), time.Now())

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus_StampsShippedAtOnce(t *testing.T) {
	o := newTestOrder(t)
	policy := order.DefaultTransitionPolicy()
	firstShip := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, o.ChangeStatus(order.Shipped, firstShip, policy))
	require.NotNil(t, o.ShippedAt())
	assert.Equal(t, firstShip, *o.ShippedAt())

	// A correcting re-entry into shipped must not move the stamp.
	later := firstShip.Add(48 * time.Hour)
	require.NoError(t, o.ChangeStatus(order.Shipped, later, policy))
	assert.Equal(t, firstShip, *o.ShippedAt())
}

func TestOrder_ChangeStatus_StampsDeliveredAtOnce(t *testing.T) {
	o := newTestOrder(t)
	policy := order.DefaultTransitionPolicy()
	delivered := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

	require.NoError(t, o.ChangeStatus(order.Delivered, delivered, policy))
	require.NotNil(t, o.DeliveredAt())
	assert.Equal(t, delivered, *o.DeliveredAt())

	// Jumping straight to delivered never back-fills shipped_at.
	assert.Nil(t, o.ShippedAt())
}

func TestOrder_ChangeStatus_CancellingDeliveredOrderFails(t *testing.T) {
	o := newTestOrder(t)
	policy := order.DefaultTransitionPolicy()
	now := time.Now().UTC()

	require.NoError(t, o.ChangeStatus(order.Delivered, now, policy))

	err := o.ChangeStatus(order.Cancelled, now.Add(time.Hour), policy)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, o.Status(), "status must be unchanged after a rejected transition")
}

func TestOrder_ChangeStatus_BackwardRejectedWithoutMutation(t *testing.T) {
	o := newTestOrder(t)
	policy := order.DefaultTransitionPolicy()
	now := time.Now().UTC()

	require.NoError(t, o.ChangeStatus(order.Shipped, now, policy))
	before := *o.ShippedAt()

	err := o.ChangeStatus(order.Processing, now.Add(time.Hour), policy)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Shipped, o.Status())
	assert.Equal(t, before, *o.ShippedAt())
}

func TestOrder_ChangeStatus_PaidBeforeShippedPolicy(t *testing.T) {
	policy := order.TransitionPolicy{AllowSkips: true, RequirePaidBeforeShipped: true}
	now := time.Now().UTC()

	t.Run("unpaid_order_cannot_ship", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Shipped, now, policy)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.ShippedAt())
	})

	t.Run("paid_order_ships", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangePaymentStatus(order.Paid, now))

		require.NoError(t, o.ChangeStatus(order.Shipped, now, policy))
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("unpaid_order_may_still_move_before_shipping", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Printing, now, policy))
	})
}

func TestOrder_ChangePaymentStatus(t *testing.T) {
	o := newTestOrder(t)
	now := time.Now().UTC()

	require.NoError(t, o.ChangePaymentStatus(order.Paid, now))
	assert.Equal(t, order.Paid, o.PaymentStatus())

	err := o.ChangePaymentStatus(order.Unpaid, now)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Paid, o.PaymentStatus())
}

func TestOrder_SetTracking(t *testing.T) {
	o := newTestOrder(t)
	policy := order.DefaultTransitionPolicy()
	now := time.Now().UTC()

	t.Run("refused_before_shipping", func(t *testing.T) {
		err := o.SetTracking("DHL", "JD014600003RU", now)

		require.ErrorIs(t, err, errs.ErrOperationRefused)
		assert.Empty(t, o.TrackingNumber())
	})

	t.Run("recorded_once_shipped", func(t *testing.T) {
		require.NoError(t, o.ChangeStatus(order.Shipped, now, policy))

		require.NoError(t, o.SetTracking("DHL", "JD014600003RU", now))
		assert.Equal(t, "DHL", o.ShippingCarrier())
		assert.Equal(t, "JD014600003RU", o.TrackingNumber())
	})

	t.Run("requires_tracking_number", func(t *testing.T) {
		err := o.SetTracking("DHL", "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Items(t *testing.T) {
	o := newTestOrder(t)
	price, _ := kernel.NewMoney(25.00)

	item, err := order.NewItem("Benchy", "SKU-001", 3, price, "")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))

	assert.Len(t, o.Items(), 1)
	assert.InDelta(t, 75.00, o.ItemsTotal().Amount(), 0.0001)

	t.Run("unconstructed_item_is_rejected", func(t *testing.T) {
		err := o.AddItem(order.Item{})

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
		assert.Len(t, o.Items(), 1)
	})
}

func TestNewItem(t *testing.T) {
	price, _ := kernel.NewMoney(9.99)

	t.Run("rejects_empty_product_name", func(t *testing.T) {
		_, err := order.NewItem("", "", 1, price, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewItem("Benchy", "", 0, price, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewItem("Benchy", "", -2, price, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewAmounts(t *testing.T) {
	t.Run("stores_values_as_given", func(t *testing.T) {
		amounts, err := order.NewAmounts(100.00, 8.00, 5.00, 10.00)

		require.NoError(t, err)
		assert.Equal(t, 100.00, amounts.Total.Amount())
		assert.Equal(t, 8.00, amounts.Tax.Amount())
		assert.Equal(t, 5.00, amounts.Shipping.Amount())
		assert.Equal(t, 10.00, amounts.Discount.Amount())
	})

	t.Run("collects_every_negative_field", func(t *testing.T) {
		_, err := order.NewAmounts(-1, 0, -2, 0)

		require.Error(t, err)
		ve, ok := err.(*errs.ValidationErrors)
		require.True(t, ok)
		assert.Len(t, ve.Fields, 2)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()
	shipped := now.Add(-time.Hour)
	amounts, _ := order.NewAmounts(100.00, 8.00, 5.00, 10.00)

	t.Run("restores_full_state", func(t *testing.T) {
		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            kernel.NewUUID(),
			Number:        "ORD-2024-002",
			CustomerID:    kernel.NewUUID(),
			OrderDate:     now,
			Status:        order.Shipped,
			PaymentStatus: order.Paid,
			Amounts:       amounts,
			ShippedAt:     &shipped,
			CreatedAt:     now,
			UpdatedAt:     now,
		})

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, shipped, *o.ShippedAt())
		assert.Equal(t, 100.00, o.Amounts().Total.Amount())
	})

	t.Run("rejects_unknown_status_values", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            kernel.NewUUID(),
			Number:        "ORD-2024-003",
			CustomerID:    kernel.NewUUID(),
			Status:        order.Status(99),
			PaymentStatus: order.Paid,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
