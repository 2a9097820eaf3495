package readcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCachesResult(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(NewMemory(time.Hour))
	scope := Scope{UserID: "u1", CollectionID: uuid.New()}
	var calls int32
	fetch := func(context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Load(ctx, l, scope, "due", fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	}
	assert.EqualValues(t, 1, calls)

	l.Invalidate(ctx, scope)
	_, err := Load(ctx, l, scope, "due", fetch)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls)
}

func TestLoadSharesConcurrentFetch(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(nil)
	scope := Scope{UserID: "u1", CollectionID: uuid.New()}
	release := make(chan struct{})
	var calls int32
	fetch := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	const n = 10
	var wg sync.WaitGroup
	var started sync.WaitGroup
	results := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		started.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			v, err := Load(ctx, l, scope, "stats", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, v := range results {
		assert.Equal(t, 42, v)
	}
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(n))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}

func TestLoadSkipsCacheAfterConcurrentInvalidate(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory(time.Hour)
	l := NewLoader(mem)
	scope := Scope{UserID: "u1", CollectionID: uuid.New()}

	_, err := Load(ctx, l, scope, "due", func(context.Context) (int, error) {
		l.Invalidate(ctx, scope)
		return 1, nil
	})
	require.NoError(t, err)

	var v int
	ok, err := mem.Get(ctx, scope, "due", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

type brokenCache struct{}

var errBroken = errors.New("cache down")

func (brokenCache) Get(context.Context, Scope, string, any) (bool, error) { return false, errBroken }
func (brokenCache) Set(context.Context, Scope, string, any) error         { return errBroken }
func (brokenCache) Invalidate(context.Context, Scope) error               { return errBroken }
func (brokenCache) Close() error                                          { return nil }

func TestLoadBypassesBrokenCache(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(brokenCache{})
	scope := Scope{UserID: "u1", CollectionID: uuid.New()}

	v, err := Load(ctx, l, scope, "due", func(context.Context) (string, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	l.Invalidate(ctx, scope)
}

func TestLoadPropagatesFetchError(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory(time.Hour)
	l := NewLoader(mem)
	scope := Scope{UserID: "u1", CollectionID: uuid.New()}
	boom := errors.New("db down")

	_, err := Load(ctx, l, scope, "due", func(context.Context) ([]int, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	var v []int
	ok, _ := mem.Get(ctx, scope, "due", &v)
	assert.False(t, ok)
}

func TestLoadSurvivesCancelledSharer(t *testing.T) {
	l := NewLoader(NewMemory(time.Hour))
	scope := Scope{UserID: "u1", CollectionID: uuid.New()}
	release := make(chan struct{})
	fetching := make(chan struct{})
	var once sync.Once
	fetch := func(ctx context.Context) (string, error) {
		once.Do(func() { close(fetching) })
		select {
		case <-release:
			return "cards", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := Load(ctxA, l, scope, "due", fetch)
		errA <- err
	}()
	<-fetching

	type result struct {
		v   string
		err error
	}
	resB := make(chan result, 1)
	go func() {
		v, err := Load(context.Background(), l, scope, "due", fetch)
		resB <- result{v, err}
	}()
	// Give B time to join A's fetch.
	time.Sleep(50 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	got := <-resB
	require.NoError(t, got.err)
	assert.Equal(t, "cards", got.v)
}

func TestLoaderForgetsIdleScopes(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(NewMemory(time.Hour))

	for i := 0; i < 100; i++ {
		scope := Scope{UserID: "u1", CollectionID: uuid.New()}
		_, err := Load(ctx, l, scope, "due", func(context.Context) (int, error) { return i, nil })
		require.NoError(t, err)
		l.Invalidate(ctx, scope)
		l.Invalidate(ctx, scope)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.flights)
}

func TestLoadKeepsGenerationWhileFetching(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory(time.Hour)
	l := NewLoader(mem)
	scope := Scope{UserID: "u1", CollectionID: uuid.New()}
	release := make(chan struct{})
	fetching := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := Load(ctx, l, scope, "due", func(context.Context) (int, error) {
			close(fetching)
			<-release
			return 1, nil
		})
		done <- err
	}()
	<-fetching
	l.Invalidate(ctx, scope)
	close(release)
	require.NoError(t, <-done)

	var v int
	ok, err := mem.Get(ctx, scope, "due", &v)
	require.NoError(t, err)
	assert.False(t, ok)
	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.flights)
}
