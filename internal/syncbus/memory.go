package syncbus

import (
	"context"
	"sync"
)

// Memory is the shared signal for sessions living in one process, the
// common case of several portal tabs sharing one client installation.
// Each session takes its own handle via Session().
type Memory struct {
	mu      sync.Mutex
	version uint64
	seq     uint64
	subs    map[uint64]*memorySub
}

type memorySub struct {
	owner  *memorySession
	notify chan struct{}
	quit   chan struct{}
}

// NewMemory returns an empty shared signal.
func NewMemory() *Memory {
	return &Memory{subs: make(map[uint64]*memorySub)}
}

// Session returns a new per-session handle on the shared signal.
func (m *Memory) Session() Channel {
	return &memorySession{store: m}
}

// Version returns the current signal value. Only useful to observe that
// it changed; the value itself carries no meaning.
func (m *Memory) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

type memorySession struct {
	store *Memory
}

func (s *memorySession) Announce(ctx context.Context) error {
	m := s.store

	m.mu.Lock()
	m.version++
	// Snapshot so handlers never run under the lock.
	targets := make([]*memorySub, 0, len(m.subs))
	for _, sub := range m.subs {
		if sub.owner == s {
			// The writing session refreshes itself directly, never
			// through the shared signal.
			continue
		}
		targets = append(targets, sub)
	}
	m.mu.Unlock()

	for _, sub := range targets {
		// Non-blocking: a pending notification already covers this change.
		select {
		case sub.notify <- struct{}{}:
		default:
		}
	}

	return nil
}

func (s *memorySession) Subscribe(h Handler) func() {
	m := s.store

	sub := &memorySub{
		owner:  s,
		notify: make(chan struct{}, 1),
		quit:   make(chan struct{}),
	}

	m.mu.Lock()
	m.seq++
	id := m.seq
	m.subs[id] = sub
	m.mu.Unlock()

	go func() {
		for {
			select {
			case <-sub.notify:
				h()
			case <-sub.quit:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
			close(sub.quit)
		})
	}
}
