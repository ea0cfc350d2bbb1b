// Package locker provides an in-process mutex keyed by identifier.
// It serializes operations for the same key while leaving operations for
// different keys fully concurrent.
package locker

import "sync"

// KeyedMutex hands out one mutex per key. Locks for distinct keys never
// contend with each other. Mutexes are retained for the lifetime of the
// KeyedMutex; the key space is bounded by the number of registered
// customers, so entries are not reclaimed.
//
// The zero value is not usable; create instances with NewKeyedMutex.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for key, creating it on first use.
// It blocks until the mutex is available.
func (k *KeyedMutex) Lock(key string) {
	k.get(key).Lock()
}

// Unlock releases the mutex for key.
// It must only be called after a matching Lock for the same key.
func (k *KeyedMutex) Unlock(key string) {
	k.get(key).Unlock()
}

func (k *KeyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
