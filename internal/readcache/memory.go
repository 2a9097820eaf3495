package readcache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

type entry struct {
	data    []byte
	expires time.Time
}

// Memory is an in-process Cache. Expired entries are never returned; a
// gocron job started with StartSweeper frees them.
type Memory struct {
	mu     sync.Mutex
	ttl    time.Duration
	scopes map[string]map[string]entry
	now    func() time.Time
	sched  *gocron.Scheduler
	closed bool
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:    ttl,
		scopes: make(map[string]map[string]entry),
		now:    time.Now,
	}
}

// StartSweeper removes expired entries every interval until Close.
func (m *Memory) StartSweeper(every time.Duration) error {
	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Every(every).Do(func() {
		if n := m.Sweep(); n > 0 {
			log.Debug().Int("evicted", n).Msg("read-cache-swept")
		}
	}); err != nil {
		return err
	}
	s.StartAsync()
	m.mu.Lock()
	m.sched = s
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, scope Scope, field string, dest any) (bool, error) {
	m.mu.Lock()
	e, ok := m.scopes[scope.key()][field]
	m.mu.Unlock()
	if !ok || !m.now().Before(e.expires) {
		return false, nil
	}
	return true, json.Unmarshal(e.data, dest)
}

func (m *Memory) Set(_ context.Context, scope Scope, field string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}
	fields, ok := m.scopes[scope.key()]
	if !ok {
		fields = make(map[string]entry)
		m.scopes[scope.key()] = fields
	}
	fields[field] = entry{data: data, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) Invalidate(_ context.Context, scope Scope) error {
	m.mu.Lock()
	delete(m.scopes, scope.key())
	m.mu.Unlock()
	return nil
}

// Sweep drops expired entries and returns how many were dropped.
func (m *Memory) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for key, fields := range m.scopes {
		for f, e := range fields {
			if !now.Before(e.expires) {
				delete(fields, f)
				n++
			}
		}
		if len(fields) == 0 {
			delete(m.scopes, key)
		}
	}
	return n
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sched != nil {
		m.sched.Stop()
	}
	m.closed = true
	m.scopes = make(map[string]map[string]entry)
	return nil
}
