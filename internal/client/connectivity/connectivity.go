// Package connectivity provides the online/offline signal consumed by the
// offline coordinator.
package connectivity

import (
	"slices"
	"sync"
)

// Listener получает новое состояние при каждом переходе online <-> offline
type Listener func(online bool)

// listeners хранит подписчиков; вызовы выполняются вне блокировки
type listeners struct {
	m    map[uint64]Listener
	next uint64
	mu   sync.Mutex
}

func (l *listeners) add(fn Listener) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.m == nil {
		l.m = make(map[uint64]Listener)
	}
	l.next++
	id := l.next
	l.m[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.m, id)
		})
	}
}

func (l *listeners) notify(online bool) {
	l.mu.Lock()
	ids := make([]uint64, 0, len(l.m))
	for id := range l.m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, l.m[id])
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}

// Manual is a connectivity signal driven explicitly by the caller.
// It backs the -offline CLI flag and tests.
type Manual struct {
	subs   listeners
	mu     sync.Mutex
	online bool
}

// NewManual creates a signal with the given initial state
func NewManual(online bool) *Manual {
	return &Manual{online: online}
}

// IsOnline returns the current state
func (m *Manual) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline changes the state. Subscribers are notified only on a transition.
func (m *Manual) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	m.mu.Unlock()

	m.subs.notify(online)
}

// Subscribe registers fn and returns a function that removes it
func (m *Manual) Subscribe(fn func(online bool)) func() {
	return m.subs.add(fn)
}
