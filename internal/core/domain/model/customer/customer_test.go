package customer_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/customer"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	now := time.Now().UTC()

	t.Run("creates_customer_with_required_fields", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", now)

		require.NoError(t, err)
		assert.Equal(t, "Ada", c.FirstName())
		assert.Equal(t, "Lovelace", c.LastName())
		assert.Equal(t, "Ada Lovelace", c.FullName())
		assert.Equal(t, "ada@example.com", c.Email())
		require.NoError(t, c.Validate())
	})

	t.Run("allows_empty_email", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "", now)

		require.NoError(t, err)
		assert.Empty(t, c.Email())
	})

	t.Run("rejects_missing_names", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "Lovelace", "", now)
		require.ErrorIs(t, err, customer.ErrFirstNameIsRequired)

		_, err = customer.NewCustomer(kernel.NewUUID(), "Ada", "", "", now)
		require.ErrorIs(t, err, customer.ErrLastNameIsRequired)
	})

	t.Run("rejects_malformed_email", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "not-an-email", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("collects_all_construction_errors", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "", "broken", now)

		require.ErrorIs(t, err, customer.ErrFirstNameIsRequired)
		require.ErrorIs(t, err, customer.ErrLastNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c customer.Customer

		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_SetAddress(t *testing.T) {
	now := time.Now().UTC()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada", "Lovelace", "", now)
	require.NoError(t, err)

	later := now.Add(time.Minute)
	c.SetAddress("12 Main St", "Apt 4", "Portland", "OR", "97201", "US", later)

	assert.Equal(t, "12 Main St", c.AddressLine1())
	assert.Equal(t, "Portland", c.City())
	assert.Equal(t, "97201", c.PostalCode())
	assert.Equal(t, later, c.UpdatedAt())
}

func TestRestoreCustomer(t *testing.T) {
	now := time.Now().UTC()

	t.Run("restores_full_state", func(t *testing.T) {
		c, err := customer.RestoreCustomer(customer.RestoreCustomerParams{
			ID:        kernel.NewUUID(),
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+1 555 0100",
			City:      "Portland",
			CreatedAt: now,
			UpdatedAt: now,
		})

		require.NoError(t, err)
		assert.Equal(t, "+1 555 0100", c.Phone())
		assert.Equal(t, "Portland", c.City())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects_corrupt_rows", func(t *testing.T) {
		_, err := customer.RestoreCustomer(customer.RestoreCustomerParams{
			ID:       kernel.NewUUID(),
			LastName: "Lovelace",
		})

		require.ErrorIs(t, err, customer.ErrFirstNameIsRequired)
	})
}
