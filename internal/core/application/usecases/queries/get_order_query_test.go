package queries_test

import (
	"testing"

	"foodtruck/internal/core/application/usecases/queries"
	"foodtruck/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.OrderID())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrderQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
