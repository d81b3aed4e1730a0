// Package lock provides per-entity serialization keyed by stable integer ids,
// so admission and settlement on the same wallet never interleave while
// unrelated wallets proceed in parallel.
package lock

import "sync"

// Arena is a set of mutexes addressed by int64 id. Locks are created lazily
// and never discarded; the population is bounded by the wallet count.
type Arena struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewArena creates an empty lock arena.
func NewArena() *Arena {
	return &Arena{locks: make(map[int64]*sync.Mutex)}
}

func (a *Arena) get(id int64) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.locks[id]
	if !ok {
		m = &sync.Mutex{}
		a.locks[id] = m
	}
	return m
}

// Lock acquires the mutex for id, blocking until available.
func (a *Arena) Lock(id int64) {
	a.get(id).Lock()
}

// Unlock releases the mutex for id.
func (a *Arena) Unlock(id int64) {
	a.get(id).Unlock()
}
