package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutService(t *testing.T) services.CheckoutService {
	t.Helper()
	table, err := pricing.NewTable()
	require.NoError(t, err)
	svc, err := services.NewCheckoutService(table)
	require.NoError(t, err)
	return svc
}

func TestNewCheckoutService(t *testing.T) {
	t.Run("rejects_unconstructed_pricing_table", func(t *testing.T) {
		_, err := services.NewCheckoutService(pricing.Table{})

		require.Error(t, err)
	})
}

func TestCheckoutService_Checkout(t *testing.T) {
	svc := newCheckoutService(t)
	customer, err := order.NewCustomer("Amine", "Bouzid", "0550123456", "")
	require.NoError(t, err)
	algiers, err := kernel.NewDestination("12 - Algiers", "Kouba")
	require.NoError(t, err)
	now := time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC)

	t.Run("home_delivery_to_algiers", func(t *testing.T) {
		// The worked example: 41500 cart + 500 home-delivery shipping = 42000.
		snapshot := []cart.Line{{ProductID: 1, Name: "Imprimante", Price: 41500, Quantity: 1}}

		o, err := svc.Checkout("AM260121001", kernel.HomeDelivery, customer, algiers, snapshot, now)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.InDelta(t, 41500, o.CartTotal(), 0.001)
		assert.InDelta(t, 500, o.ShippingPrice(), 0.001)
		assert.InDelta(t, 42000, o.GrandTotal(), 0.001)
		assert.Equal(t, now, o.Date())
	})

	t.Run("pickup_point_to_algiers_ships_free", func(t *testing.T) {
		snapshot := []cart.Line{{ProductID: 1, Name: "Imprimante", Price: 41500, Quantity: 1}}

		o, err := svc.Checkout("AM260121002", kernel.PickupPoint, customer, algiers, snapshot, now)

		require.NoError(t, err)
		assert.Zero(t, o.ShippingPrice())
		assert.InDelta(t, 41500, o.GrandTotal(), 0.001)
	})

	t.Run("rejects_empty_cart", func(t *testing.T) {
		_, err := svc.Checkout("AM260121003", kernel.HomeDelivery, customer, algiers, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unconstructed_customer", func(t *testing.T) {
		snapshot := []cart.Line{{ProductID: 1, Price: 10, Quantity: 1}}

		_, err := svc.Checkout("AM260121004", kernel.HomeDelivery, order.Customer{}, algiers, snapshot, now)

		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_destination", func(t *testing.T) {
		snapshot := []cart.Line{{ProductID: 1, Price: 10, Quantity: 1}}

		_, err := svc.Checkout("AM260121005", kernel.HomeDelivery, customer, kernel.Destination{}, snapshot, now)

		require.Error(t, err)
	})

	t.Run("snapshot_lines_become_order_items", func(t *testing.T) {
		c := cart.NewCart()
		require.NoError(t, c.AddLine(cart.Line{ProductID: 1, Name: "a", Price: 100, Quantity: 2}))
		require.NoError(t, c.AddLine(cart.Line{ProductID: 2, Name: "b", Price: 50, Quantity: 1}))

		o, err := svc.Checkout("AM260121006", kernel.HomeDelivery, customer, algiers, c.Snapshot(), now)

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, order.Item{ID: 1, Name: "a", Price: 100, Quantity: 2}, items[0])
		assert.Equal(t, order.Item{ID: 2, Name: "b", Price: 50, Quantity: 1}, items[1])
		assert.InDelta(t, 250, o.CartTotal(), 0.001)
	})
}
