package synced

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/rescache"
	"github.com/unkn0wn-root/rescache/keys"
	"github.com/unkn0wn-root/rescache/ownership"
)

func newSynced(t *testing.T) *Cache[string, int] {
	t.Helper()
	inner := rescache.New[string, int](rescache.Options[string, int]{
		Name:      "synced",
		Keys:      keys.String(),
		Ownership: ownership.Raw[int](),
	})
	return New(inner, func(k string) string { return k })
}

func TestBasicOpsUnderWrapper(t *testing.T) {
	c := newSynced(t)

	c.Add("k", 1)
	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.True(t, c.Has("k"))
	require.Equal(t, 1, c.Len())

	require.True(t, c.Invalidate("k"))
	require.Equal(t, 1, c.Collect())
	require.False(t, c.Has("k"))

	r := c.Report()
	require.Equal(t, "synced", r.Cache)
	require.Equal(t, uint64(1), r.Counters.Evictions)
}

func TestGetOrAddLoadsOnceUnderContention(t *testing.T) {
	c := newSynced(t)
	var loads atomic.Int64

	const workers = 16
	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]int, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = c.GetOrAdd("glyph", func() (int, error) {
				loads.Add(1)
				time.Sleep(20 * time.Millisecond) // hold the flight open
				return 99, nil
			})
		}(i)
	}
	close(start)
	wg.Wait()

	require.Equal(t, int64(1), loads.Load(), "concurrent loads must coalesce")
	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, 99, results[i])
	}
	require.True(t, c.Has("glyph"))
}

func TestGetOrAddBumpsOnHit(t *testing.T) {
	c := newSynced(t)
	c.Add("k", 5)

	v, err := c.GetOrAdd("k", func() (int, error) {
		t.Fatalf("loader must not run on hit")
		return 0, nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, v)

	// Add(1) + GetOrAdd bump => age 2: survives two sweeps, evicted by the third
	require.Equal(t, 0, c.Collect())
	require.Equal(t, 0, c.Collect())
	require.Equal(t, 1, c.Collect())
}

func TestGetOrAddPropagatesLoadError(t *testing.T) {
	c := newSynced(t)
	wantErr := errors.New("rasterize failed")

	_, err := c.GetOrAdd("k", func() (int, error) { return 0, wantErr })
	require.ErrorIs(t, err, wantErr)
	require.False(t, c.Has("k"))
}
