package commands_test

import (
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOrderParams() commands.CreateOrderParams {
	return commands.CreateOrderParams{
		OrderNumber: "ORD-2024-042",
		CustomerID:  kernel.NewUUID(),
		OrderDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Items: []commands.OrderItemParams{
			{ProductName: "Benchy", ProductSKU: "SKU-001", Quantity: 2, UnitPrice: 25.00},
			{ProductName: "Phone stand", Quantity: 1, UnitPrice: 12.50},
		},
		TotalAmount:    70.50,
		TaxAmount:      5.00,
		ShippingAmount: 3.00,
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates_command_from_valid_params", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams())

		require.NoError(t, err)
		assert.Equal(t, "ORD-2024-042", cmd.OrderNumber())
		assert.Len(t, cmd.Items(), 2)
		assert.InDelta(t, 70.50, cmd.Amounts().Total.Amount(), 0.0001)
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects_empty_order_number", func(t *testing.T) {
		p := validCreateOrderParams()
		p.OrderNumber = ""

		_, err := commands.NewCreateOrderCommand(p)

		require.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)
	})

	t.Run("rejects_zero_customer_id", func(t *testing.T) {
		p := validCreateOrderParams()
		p.CustomerID = kernel.UUID{}

		_, err := commands.NewCreateOrderCommand(p)

		require.Error(t, err)
	})

	t.Run("rejects_invalid_item", func(t *testing.T) {
		p := validCreateOrderParams()
		p.Items[0].Quantity = 0

		_, err := commands.NewCreateOrderCommand(p)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		p := validCreateOrderParams()
		p.DiscountAmount = -4

		_, err := commands.NewCreateOrderCommand(p)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("commands_generate_unique_ids", func(t *testing.T) {
		cmd1, err := commands.NewCreateOrderCommand(validCreateOrderParams())
		require.NoError(t, err)
		cmd2, err := commands.NewCreateOrderCommand(validCreateOrderParams())
		require.NoError(t, err)

		assert.NotEqual(t, cmd1.OrderID(), cmd2.OrderID())
	})
}
