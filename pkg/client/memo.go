package client

import (
	"sync"
	"time"
)

type memoEntry struct {
	value     any
	fetchedAt time.Time
}

// memo is a small time-bounded cache keyed by endpoint name. It bounds
// the request rate when several renders happen within the same window,
// e.g. a status call right after a watch cycle.
type memo struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoEntry
	now     func() time.Time
}

func newMemo(ttl time.Duration) *memo {
	return &memo{
		ttl:     ttl,
		entries: make(map[string]memoEntry),
		now:     time.Now,
	}
}

func (m *memo) get(key string) (any, bool) {
	if m.ttl <= 0 {
		return nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.fetchedAt) > m.ttl {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

func (m *memo) put(key string, value any) {
	if m.ttl <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoEntry{value: value, fetchedAt: m.now()}
}
