package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle_Found(t *testing.T) {
	handler := queries.NewGetOrderQueryHandler(boardFixture(t))
	query, err := queries.NewGetOrderQuery("AM260828002")
	require.NoError(t, err)

	got, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Equal(t, "AM260828002", got.OrderNumber)
	assert.Equal(t, "Amine", got.FirstName)
	assert.Equal(t, "0550123456", got.Phone1)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	handler := queries.NewGetOrderQueryHandler(boardFixture(t))
	query, err := queries.NewGetOrderQuery("AM990101001")
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewGetOrderQuery_RequiresOrderNumber(t *testing.T) {
	_, err := queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
