package iocache

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/huangsam/orderpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "/order_status_overview", Key("/order_status_overview", nil))

	params := url.Values{}
	params.Set("salesperson", "S1")
	params.Set("branch", "North")
	assert.Equal(t, "/order_qty_trend_data?branch=North&salesperson=S1", Key("/order_qty_trend_data", params))
}

func TestFetcherCachesWithinTTL(t *testing.T) {
	f := NewFetcher(NewMemoryStore(), time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	var loads atomic.Int32
	load := func(context.Context) ([]byte, error) {
		loads.Add(1)
		return []byte("body"), nil
	}

	ctx := context.Background()
	for range 3 {
		data, err := f.Fetch(ctx, "k", load)
		require.NoError(t, err)
		assert.Equal(t, []byte("body"), data)
	}
	assert.Equal(t, int32(1), loads.Load())

	now = now.Add(2 * time.Minute)
	_, err := f.Fetch(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load(), "expired entry must reload")

	status, err := f.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.Hits)
	assert.Equal(t, int64(2), status.Misses)
	assert.Equal(t, 1, status.TotalEntries)
	assert.Equal(t, time.Minute, status.TTL)
}

func TestFetcherSingleFlight(t *testing.T) {
	f := NewFetcher(nil, 0) // no storage, dedup only
	release := make(chan struct{})
	started := make(chan struct{})
	var loads atomic.Int32
	load := func(context.Context) ([]byte, error) {
		if loads.Add(1) == 1 {
			close(started)
		}
		<-release
		return []byte("shared"), nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]byte, callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = f.Fetch(context.Background(), "k", load)
	}()
	<-started
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.Fetch(context.Background(), "k", load)
		}(i)
	}
	// Give the followers time to join the in-flight call.
	require.Eventually(t, func() bool { return f.calls.Load() == callers }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, []byte("shared"), results[i])
	}
	status, err := f.Status()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.Equal(t, int64(callers-1), status.Shared)
}

func TestFetcherDoesNotCacheErrors(t *testing.T) {
	store := NewMemoryStore()
	f := NewFetcher(store, time.Minute)
	boom := errors.New("boom")

	_, err := f.Fetch(context.Background(), "k", func(context.Context) ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	status, _ := store.GetStatus()
	assert.Zero(t, status.TotalEntries)

	data, err := f.Fetch(context.Background(), "k", func(context.Context) ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
}

func TestFetcherZeroTTLSkipsStore(t *testing.T) {
	store := NewMemoryStore()
	f := NewFetcher(store, 0)
	var loads atomic.Int32
	load := func(context.Context) ([]byte, error) {
		loads.Add(1)
		return []byte("x"), nil
	}
	_, _ = f.Fetch(context.Background(), "k", load)
	_, _ = f.Fetch(context.Background(), "k", load)
	assert.Equal(t, int32(2), loads.Load())
	status, _ := store.GetStatus()
	assert.Zero(t, status.TotalEntries)
}

func TestFetcherCallerCancellation(t *testing.T) {
	f := NewFetcher(nil, 0)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Fetch(ctx, "k", func(context.Context) ([]byte, error) {
		<-release
		return []byte("late"), nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcherVersionMismatchIsMiss(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Get", "k").Return([]byte("stale"), currentCacheVersion+1, time.Now().UnixNano(), nil)
	store.On("Set", "k", []byte("fresh"), currentCacheVersion, mock.AnythingOfType("int64")).Return(errors.New("disk full"))

	f := NewFetcher(store, time.Hour)
	data, err := f.Fetch(context.Background(), "k", func(context.Context) ([]byte, error) { return []byte("fresh"), nil })
	require.NoError(t, err, "a failed store write must not fail the fetch")
	assert.Equal(t, []byte("fresh"), data)
	store.AssertExpectations(t)
}

func TestNewManagedFetcher(t *testing.T) {
	store := NewMemoryStore()
	mgr := &MockCacheManager{}
	mgr.On("GetResponseStore").Return(store)

	f := NewManagedFetcher(mgr, time.Minute)
	_, err := f.Fetch(context.Background(), "k", func(context.Context) ([]byte, error) { return []byte("v"), nil })
	require.NoError(t, err)

	status, _ := store.GetStatus()
	assert.Equal(t, 1, status.TotalEntries)
	mgr.AssertExpectations(t)

	require.NoError(t, f.Clear())
	status, _ = store.GetStatus()
	assert.Zero(t, status.TotalEntries)

	assert.NotNil(t, NewManagedFetcher(nil, time.Minute))
}
