package localstore_test

import (
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/adapters/out/localstore"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.NewStore(filepath.Join(t.TempDir(), "data", "orders.json"))
	require.NoError(t, err)
	return store
}

func newOrder(t *testing.T, orderNumber string, date time.Time) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Amine", "Bouzid", "0550123456", "")
	require.NoError(t, err)

	dest, err := kernel.NewDestination("02 - Chlef", "Ain Merane")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		orderNumber,
		kernel.HomeDelivery,
		customer,
		dest,
		[]order.Item{{ID: 4, Name: "Imprimante Brother DCP-T530 DW", Price: 52500, Quantity: 2}},
		800,
		date,
	)
	require.NoError(t, err)
	return aggregate
}

func TestStore_AddAndGet(t *testing.T) {
	store := newStore(t)
	ctx := t.Context()
	placed := newOrder(t, "AM260828001", time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC))

	require.NoError(t, store.Add(ctx, placed))

	restored, err := store.Get(ctx, "AM260828001")
	require.NoError(t, err)
	assert.True(t, placed.IsEqual(restored))
	assert.InDelta(t, 105800, restored.GrandTotal(), 0.001)
}

func TestStore_GetAll_MostRecentFirst(t *testing.T) {
	store := newStore(t)
	ctx := t.Context()
	base := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Add(ctx, newOrder(t, "AM260828001", base)))
	require.NoError(t, store.Add(ctx, newOrder(t, "AM260828002", base.Add(time.Hour))))

	orders, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "AM260828002", orders[0].OrderNumber())
	assert.Equal(t, "AM260828001", orders[1].OrderNumber())
}

func TestStore_UpdateStatus(t *testing.T) {
	store := newStore(t)
	ctx := t.Context()
	require.NoError(t, store.Add(ctx, newOrder(t, "AM260828001", time.Now().UTC())))

	require.NoError(t, store.UpdateStatus(ctx, "AM260828001", order.Returned))

	restored, err := store.Get(ctx, "AM260828001")
	require.NoError(t, err)
	assert.Equal(t, order.Returned, restored.Status())
}

func TestStore_UpdateStatus_NotFound(t *testing.T) {
	store := newStore(t)
	err := store.UpdateStatus(t.Context(), "AM990101001", order.Accepted)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := newStore(t)
	ctx := t.Context()
	require.NoError(t, store.Add(ctx, newOrder(t, "AM260828001", time.Now().UTC())))

	require.NoError(t, store.Delete(ctx, "AM260828001"))

	_, err := store.Get(ctx, "AM260828001")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, store.Delete(ctx, "AM260828001"), errs.ErrObjectNotFound)
}

func TestStore_Next_StartsAtOneAndCounts(t *testing.T) {
	store := newStore(t)
	ctx := t.Context()

	for want := int64(1); want <= 3; want++ {
		value, err := store.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, value)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.json")
	ctx := t.Context()

	store, err := localstore.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, newOrder(t, "AM260828001", time.Now().UTC())))

	_, err = store.Next(ctx)
	require.NoError(t, err)

	// The counter and the orders persist across process restarts.
	reopened, err := localstore.NewStore(path)
	require.NoError(t, err)

	orders, err := reopened.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	value, err := reopened.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), value)
}

func TestLocalUnitOfWork_NoOpTransactions(t *testing.T) {
	store := newStore(t)
	factory := localstore.NewLocalUnitOfWorkFactory(store)
	uow := factory.Create()
	ctx := t.Context()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, "AM260828001", time.Now().UTC())))
	require.NoError(t, uow.Commit(ctx))
	require.NoError(t, uow.Rollback(ctx))

	// A rollback after commit never undoes the atomic file write.
	restored, err := store.Get(ctx, "AM260828001")
	require.NoError(t, err)
	assert.Equal(t, "AM260828001", restored.OrderNumber())
}
