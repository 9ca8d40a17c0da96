package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/cache"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

type report struct {
	Total float64 `json:"total"`
}

func newClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestReportCache_FetchJSONCachesUntilBump(t *testing.T) {
	client, _ := newClient(t)
	c := cache.NewReportCache(client, time.Minute)
	ctx := context.Background()
	tenantID := uuid.New()

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return report{Total: float64(calls) * 100}, nil
	}

	var got report
	require.NoError(t, c.FetchJSON(ctx, tenantID, "gstr1:2025-01-01:2025-01-31", &got, loader))
	assert.Equal(t, 100.0, got.Total)

	require.NoError(t, c.FetchJSON(ctx, tenantID, "gstr1:2025-01-01:2025-01-31", &got, loader))
	assert.Equal(t, 100.0, got.Total)
	assert.Equal(t, 1, calls)

	require.NoError(t, c.Bump(ctx, tenantID))

	require.NoError(t, c.FetchJSON(ctx, tenantID, "gstr1:2025-01-01:2025-01-31", &got, loader))
	assert.Equal(t, 200.0, got.Total)
	assert.Equal(t, 2, calls)
}

func TestReportCache_BumpIsPerTenant(t *testing.T) {
	client, _ := newClient(t)
	c := cache.NewReportCache(client, time.Minute)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	calls := map[uuid.UUID]int{}
	loaderFor := func(id uuid.UUID) func(context.Context) (any, error) {
		return func(context.Context) (any, error) {
			calls[id]++
			return report{Total: 1}, nil
		}
	}

	var got report
	require.NoError(t, c.FetchJSON(ctx, a, "k", &got, loaderFor(a)))
	require.NoError(t, c.FetchJSON(ctx, b, "k", &got, loaderFor(b)))
	require.NoError(t, c.Bump(ctx, a))
	require.NoError(t, c.FetchJSON(ctx, a, "k", &got, loaderFor(a)))
	require.NoError(t, c.FetchJSON(ctx, b, "k", &got, loaderFor(b)))

	assert.Equal(t, 2, calls[a])
	assert.Equal(t, 1, calls[b])
}

func TestReportCache_LoaderErrorNotCached(t *testing.T) {
	client, _ := newClient(t)
	c := cache.NewReportCache(client, time.Minute)
	ctx := context.Background()
	tenantID := uuid.New()
	boom := errors.New("db down")

	var got report
	err := c.FetchJSON(ctx, tenantID, "k", &got, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	err = c.FetchJSON(ctx, tenantID, "k", &got, func(context.Context) (any, error) { return report{Total: 5}, nil })
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Total)
}

func TestReportCache_ConcurrentMissesShareLoader(t *testing.T) {
	client, _ := newClient(t)
	c := cache.NewReportCache(client, time.Minute)
	ctx := context.Background()
	tenantID := uuid.New()

	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return report{Total: 7}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got report
			assert.NoError(t, c.FetchJSON(ctx, tenantID, "k", &got, loader))
			assert.Equal(t, 7.0, got.Total)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls, 5)
	assert.GreaterOrEqual(t, calls, 1)
}

func TestReportCache_CancelledCallerDoesNotFailWaiters(t *testing.T) {
	client, _ := newClient(t)
	c := cache.NewReportCache(client, time.Minute)
	tenantID := uuid.New()

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	loader := func(ctx context.Context) (any, error) {
		once.Do(func() { close(started) })
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return report{Total: 11}, nil
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		var got report
		firstErr <- c.FetchJSON(firstCtx, tenantID, "k", &got, loader)
	}()
	<-started

	type result struct {
		got report
		err error
	}
	second := make(chan result, 1)
	go func() {
		var got report
		err := c.FetchJSON(context.Background(), tenantID, "k", &got, loader)
		second <- result{got: got, err: err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)
	close(release)

	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, 11.0, res.got.Total)

	// The shared load still populated the cache.
	var cached report
	require.NoError(t, c.FetchJSON(context.Background(), tenantID, "k", &cached,
		func(context.Context) (any, error) { return nil, errors.New("loader should not run") }))
	assert.Equal(t, 11.0, cached.Total)
}

func TestReportCache_NilClientCallsLoader(t *testing.T) {
	c := cache.NewReportCache(nil, time.Minute)
	var got report
	require.NoError(t, c.FetchJSON(context.Background(), uuid.New(), "k", &got,
		func(context.Context) (any, error) { return report{Total: 3}, nil }))
	assert.Equal(t, 3.0, got.Total)
	assert.NoError(t, c.Bump(context.Background(), uuid.New()))
}

func TestLocker_ObtainRelease(t *testing.T) {
	client, _ := newClient(t)
	l := cache.NewLocker(client)
	ctx := context.Background()

	release, err := l.Obtain(ctx, "reconcile:t1:012025", time.Minute)
	require.NoError(t, err)

	_, err = l.Obtain(ctx, "reconcile:t1:012025", time.Minute)
	assert.ErrorIs(t, err, domain.ErrLockHeld)

	_, err = l.Obtain(ctx, "reconcile:t1:022025", time.Minute)
	assert.NoError(t, err)

	require.NoError(t, release(ctx))

	release, err = l.Obtain(ctx, "reconcile:t1:012025", time.Minute)
	require.NoError(t, err)
	assert.NoError(t, release(ctx))
}

func TestLocker_ExpiresAfterTTL(t *testing.T) {
	client, mr := newClient(t)
	l := cache.NewLocker(client)
	ctx := context.Background()

	_, err := l.Obtain(ctx, "k", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = l.Obtain(ctx, "k", time.Second)
	assert.NoError(t, err)
}
