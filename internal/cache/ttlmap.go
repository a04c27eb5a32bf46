// Package cache provides a small TTL map used by the HTTP layer to
// dedupe repeated scans of the same token. The scanning core never
// caches across scans.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type TTLMap struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]entry

	// nowFn is swappable in tests.
	nowFn func() time.Time
}

func NewTTLMap(ttl time.Duration) *TTLMap {
	return &TTLMap{
		ttl:   ttl,
		items: make(map[string]entry),
		nowFn: time.Now,
	}
}

func (m *TTLMap) Get(key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.nowFn().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (m *TTLMap) Set(key string, value any) {
	m.mu.Lock()
	m.items[key] = entry{value: value, expiresAt: m.nowFn().Add(m.ttl)}
	m.mu.Unlock()
}

func (m *TTLMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
