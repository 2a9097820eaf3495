package readcache

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Loader sits in front of a Cache. Concurrent loads of the same field share
// one fetch, and a fetch that straddles an Invalidate is not cached.
type Loader struct {
	cache Cache
	group singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
}

// flight tracks the fetches running against one scope. It only exists while
// at least one is running.
type flight struct {
	gen     uint64
	running int
}

// NewLoader wraps c. A nil c only deduplicates.
func NewLoader(c Cache) *Loader {
	return &Loader{cache: c, flights: make(map[string]*flight)}
}

func (l *Loader) generation(scope Scope) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f := l.flights[scope.key()]; f != nil {
		return f.gen
	}
	return 0
}

func (l *Loader) begin(scope Scope) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	f := l.flights[scope.key()]
	if f == nil {
		f = &flight{}
		l.flights[scope.key()] = f
	}
	f.running++
	return f.gen
}

// finish reports whether scope is still at generation gen, and forgets the
// scope once its last fetch is done.
func (l *Loader) finish(scope Scope, gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	f := l.flights[scope.key()]
	current := f.gen == gen
	f.running--
	if f.running == 0 {
		delete(l.flights, scope.key())
	}
	return current
}

// Invalidate drops every cached read of scope. Cache errors are logged; the
// generation bump still keeps in-flight fetches from repopulating it.
func (l *Loader) Invalidate(ctx context.Context, scope Scope) {
	l.mu.Lock()
	if f := l.flights[scope.key()]; f != nil {
		f.gen++
	}
	l.mu.Unlock()
	if l.cache == nil {
		return
	}
	if err := l.cache.Invalidate(ctx, scope); err != nil {
		log.Ctx(ctx).Err(err).Str("scope", scope.key()).Msg("read-cache-invalidate-failed")
	}
}

// Load returns the cached value of field in scope, or calls fetch and caches
// its result. The shared fetch is not cancelled with the caller that started
// it; each caller stops waiting when its own ctx is done.
func Load[T any](ctx context.Context, l *Loader, scope Scope, field string,
	fetch func(context.Context) (T, error)) (T, error) {

	var zero T
	if l.cache != nil {
		var cached T
		ok, err := l.cache.Get(ctx, scope, field, &cached)
		if err != nil {
			log.Ctx(ctx).Err(err).Str("field", field).Msg("read-cache-get-failed")
		} else if ok {
			return cached, nil
		}
	}

	key := fmt.Sprintf("%s|%s|%d", scope.key(), field, l.generation(scope))
	fetchCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		gen := l.begin(scope)
		val, err := fetch(fetchCtx)
		stored := false
		if err == nil && l.cache != nil && l.generation(scope) == gen {
			if err := l.cache.Set(fetchCtx, scope, field, val); err != nil {
				log.Ctx(fetchCtx).Err(err).Str("field", field).Msg("read-cache-set-failed")
			} else {
				stored = true
			}
		}
		// Late callers must start a fresh fetch once this one stops
		// counting toward the scope.
		l.group.Forget(key)
		if !l.finish(scope, gen) && stored {
			// An Invalidate raced the Set above.
			if err := l.cache.Invalidate(fetchCtx, scope); err != nil {
				log.Ctx(fetchCtx).Err(err).Str("scope", scope.key()).Msg("read-cache-invalidate-failed")
			}
		}
		return val, err
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
