// Package seen keeps the keys of reminders that already fired.
package seen

import (
	"context"
	"sync"
	"time"
)

// Memory is a process-local seen-set. Keys older than ttl are forgotten on the next write.
type Memory struct {
	mu   sync.Mutex
	keys map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		keys: make(map[string]time.Time),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *Memory) MarkIfNew(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.prune(now)

	if _, ok := m.keys[key]; ok {
		return false, nil
	}
	m.keys[key] = now
	return true, nil
}

func (m *Memory) prune(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for k, at := range m.keys {
		if now.Sub(at) > m.ttl {
			delete(m.keys, k)
		}
	}
}
