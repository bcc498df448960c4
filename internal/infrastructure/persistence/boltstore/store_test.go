package boltstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/persistence/boltstore"
	"github.com/DanielPopoola/webpay-gateway/internal/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *boltstore.Store {
	t.Helper()
	store, err := boltstore.New(filepath.Join(t.TempDir(), "webpay.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	trx := testhelpers.CreateTransaction(t, "order-001")

	id, err := store.Insert(ctx, trx)
	require.NoError(t, err)
	assert.Equal(t, trx.ID, id)

	found, err := store.Find(ctx, "order-001", "1213")
	require.NoError(t, err)
	assert.Equal(t, trx.ID, found.ID)
	assert.True(t, trx.Amount.Equal(found.Amount))
	require.True(t, found.InstallmentsAmount.Valid)
	assert.True(t, decimal.NewFromInt(3334).Equal(found.InstallmentsAmount.Decimal))
	assert.Equal(t, "6623", *found.CardSuffix)
	assert.True(t, trx.CreatedAt.Equal(found.CreatedAt))

	_, err = store.Find(ctx, "order-001", "0000")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	_, err = store.FindByBuyOrder(ctx, "order-404")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestStore_Exists(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	exists, err := store.Exists(ctx, "order-001")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Insert(ctx, testhelpers.CreateTransaction(t, "order-001"))
	require.NoError(t, err)

	exists, err = store.Exists(ctx, "order-001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Insert(ctx, testhelpers.CreateTransaction(t, "order-001"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, testhelpers.CreateTransaction(t, "order-001"))
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
}

func TestStore_ConcurrentInsertsKeepOneRecord(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	const workers = 16
	var wg sync.WaitGroup
	var succeeded, duplicates atomic.Int32

	for range workers {
		trx := testhelpers.CreateTransaction(t, "order-race")
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Insert(ctx, trx)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrDuplicateTransaction):
				duplicates.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(workers-1), duplicates.Load())
}

func TestStore_RespectsCancelledContext(t *testing.T) {
	store := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Exists(ctx, "order-001")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
	assert.NoError(t, store.Ping(context.Background()))
}
