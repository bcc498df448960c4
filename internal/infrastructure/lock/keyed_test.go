package lock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLocker_SerializesSameKey(t *testing.T) {
	locker := lock.NewKeyedLocker()
	ctx := context.Background()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Lock(ctx, "order-001")
			if err != nil {
				return
			}
			defer release()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, locker.Len())
}

func TestKeyedLocker_IndependentKeys(t *testing.T) {
	locker := lock.NewKeyedLocker()
	ctx := context.Background()

	first, err := locker.Lock(ctx, "order-a")
	require.NoError(t, err)
	defer first()

	timeoutCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	second, err := locker.Lock(timeoutCtx, "order-b")
	require.NoError(t, err)
	second()
}

func TestKeyedLocker_ContextCancelledWhileWaiting(t *testing.T) {
	locker := lock.NewKeyedLocker()

	release, err := locker.Lock(context.Background(), "order-001")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, "order-001")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	release()
	assert.Equal(t, 0, locker.Len())
}
