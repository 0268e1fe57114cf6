package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process CounterStore. Each (policy, key) pair owns
// one fixed window; the counter resets entirely at the window boundary.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry

	now          func() time.Time
	cleanupEvery time.Duration
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// WithCleanupEvery changes the janitor interval. Zero disables the janitor.
func WithCleanupEvery(d time.Duration) MemoryOption {
	return func(s *MemoryStore) { s.cleanupEvery = d }
}

// NewMemoryStore creates an in-memory counter store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries:      make(map[string]*windowEntry),
		now:          time.Now,
		cleanupEvery: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Incr implements CounterStore.
func (s *MemoryStore) Incr(_ context.Context, policy, key string, window time.Duration) (int, time.Time, error) {
	now := s.now()
	k := policy + ":" + key

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[k]
	if !ok || !now.Before(ent.resetAt) {
		ent = &windowEntry{resetAt: now.Add(window)}
		s.entries[k] = ent
	}
	ent.count++
	return ent.count, ent.resetAt, nil
}

// Cleanup removes entries whose window has already expired.
func (s *MemoryStore) Cleanup() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if !now.Before(ent.resetAt) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor launches a goroutine purging expired windows periodically.
// It stops when the context is cancelled.
func (s *MemoryStore) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 {
		return
	}
	t := time.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}
