package redis_test

import (
	"context"
	"sync"
	"testing"

	"github.com/brunosilvadev/rinha-2025/internal/adapter/storage/redis"
	"github.com/brunosilvadev/rinha-2025/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummaryStore(t *testing.T) (*redis.SummaryStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	guard := redis.NewGuard("test-summary", zerolog.Nop())
	return redis.NewSummaryStore(client, guard), mr
}

func TestSummaryStore_EmptySnapshot(t *testing.T) {
	store, _ := newSummaryStore(t)

	sum, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.Default.TotalRequests)
	assert.Equal(t, 0.0, sum.Default.TotalAmount)
	assert.Equal(t, int64(0), sum.Fallback.TotalRequests)
	assert.Equal(t, 0.0, sum.Fallback.TotalAmount)
}

func TestSummaryStore_IncrementAccumulates(t *testing.T) {
	store, _ := newSummaryStore(t)
	ctx := context.Background()

	// 19.90 + 0.10 on default, 5.00 on fallback.
	require.NoError(t, store.Increment(ctx, domain.ProcessorDefault, 1990))
	require.NoError(t, store.Increment(ctx, domain.ProcessorDefault, 10))
	require.NoError(t, store.Increment(ctx, domain.ProcessorFallback, 500))

	sum, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Default.TotalRequests)
	assert.InDelta(t, 20.0, sum.Default.TotalAmount, 1e-9)
	assert.Equal(t, int64(1), sum.Fallback.TotalRequests)
	assert.InDelta(t, 5.0, sum.Fallback.TotalAmount, 1e-9)
}

func TestSummaryStore_KeyLayout(t *testing.T) {
	store, mr := newSummaryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Increment(ctx, domain.ProcessorDefault, 1990))

	requests, err := mr.Get("payment_summary:default:requests")
	require.NoError(t, err)
	assert.Equal(t, "1", requests)

	amount, err := mr.Get("payment_summary:default:amount")
	require.NoError(t, err)
	assert.Equal(t, "1990", amount, "amounts are stored in cents")
}

func TestSummaryStore_ConcurrentIncrements(t *testing.T) {
	store, _ := newSummaryStore(t)
	ctx := context.Background()

	const workers = 20
	const perWorker = 10

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_ = store.Increment(ctx, domain.ProcessorDefault, 100)
			}
		}()
	}
	wg.Wait()

	sum, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), sum.Default.TotalRequests, "no increment may be lost")
	assert.InDelta(t, float64(workers*perWorker), sum.Default.TotalAmount, 1e-9)
}

func TestSummaryStore_Reset(t *testing.T) {
	store, _ := newSummaryStore(t)
	ctx := context.Background()

	require.NoError(t, store.Increment(ctx, domain.ProcessorDefault, 1000))
	require.NoError(t, store.Increment(ctx, domain.ProcessorFallback, 2000))
	require.NoError(t, store.Reset(ctx))

	sum, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.Default.TotalRequests)
	assert.Equal(t, int64(0), sum.Fallback.TotalRequests)
}

func TestSummaryStore_ResetOnEmptyStore(t *testing.T) {
	store, _ := newSummaryStore(t)

	assert.NoError(t, store.Reset(context.Background()), "resetting absent counters is not an error")
}
