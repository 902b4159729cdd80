package cache

import (
	"context"
	"sync"
	"time"
)

// sweepEvery is how many writes pass between full scans for expired entries.
const sweepEvery = 256

type item struct {
	data     []byte
	deadline time.Time // zero means no expiry
}

func (it item) expired(now time.Time) bool {
	return !it.deadline.IsZero() && !now.Before(it.deadline)
}

// Store is the in-process Backend. Expired entries are dropped when read and
// by a periodic sweep on write.
type Store struct {
	mu     sync.Mutex
	items  map[string]item
	ttl    time.Duration
	writes int
	now    func() time.Time
}

var _ Backend = (*Store)(nil)

// NewStore keeps entries for ttl; zero or less keeps them until deleted.
func NewStore(ttl time.Duration) *Store {
	return &Store{items: make(map[string]item), ttl: ttl, now: time.Now}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	if it.expired(s.now()) {
		delete(s.items, key)
		return nil, false, nil
	}
	return it.data, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return nil
	}

	now := s.now()
	it := item{data: append([]byte(nil), value...)}
	if s.ttl > 0 {
		it.deadline = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = it
	s.writes++
	if s.writes%sweepEvery == 0 {
		s.sweepLocked(now)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// Len counts stored entries, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) sweepLocked(now time.Time) {
	for key, it := range s.items {
		if it.expired(now) {
			delete(s.items, key)
		}
	}
}
