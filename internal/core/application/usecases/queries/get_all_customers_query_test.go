package queries_test

import (
	"testing"

	"printshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllCustomersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllCustomersQuery()

	require.NoError(t, query.Validate())
}

func TestGetAllCustomersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllCustomersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllCustomersQueryIsNotConstructed)
}
