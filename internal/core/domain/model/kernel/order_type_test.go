package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderType(t *testing.T) {
	t.Run("parses_home_delivery", func(t *testing.T) {
		orderType, err := kernel.ParseOrderType("home-delivery")

		require.NoError(t, err)
		assert.Equal(t, kernel.HomeDelivery, orderType)
	})

	t.Run("parses_pickup_point", func(t *testing.T) {
		orderType, err := kernel.ParseOrderType("pickup-point")

		require.NoError(t, err)
		assert.Equal(t, kernel.PickupPoint, orderType)
	})

	t.Run("rejects_empty_value", func(t *testing.T) {
		_, err := kernel.ParseOrderType("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unknown_value", func(t *testing.T) {
		_, err := kernel.ParseOrderType("carrier-pigeon")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderType_Validate(t *testing.T) {
	require.NoError(t, kernel.HomeDelivery.Validate())
	require.NoError(t, kernel.PickupPoint.Validate())
	require.Error(t, kernel.UnknownOrderType.Validate())
	require.Error(t, kernel.OrderType(42).Validate())
}

func TestOrderType_String(t *testing.T) {
	assert.Equal(t, "home-delivery", kernel.HomeDelivery.String())
	assert.Equal(t, "pickup-point", kernel.PickupPoint.String())
	assert.Equal(t, "unknown", kernel.UnknownOrderType.String())
	assert.Equal(t, "unknown", kernel.OrderType(42).String())
}
