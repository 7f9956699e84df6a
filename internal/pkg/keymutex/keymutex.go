// Package keymutex provides a striped mutex keyed by string. Keys are mapped
// to a fixed set of locks by consistent hashing, so two holders of the same
// key always contend on the same lock while unrelated keys rarely do.
package keymutex

import (
	"hash/fnv"
	"sync"
)

const defaultStripes = 32

// KeyMutex serializes critical sections per key.
type KeyMutex struct {
	stripes []sync.Mutex
}

// New creates a KeyMutex with the given number of stripes.
// If stripes <= 0, defaultStripes is used.
func New(stripes int) *KeyMutex {
	if stripes <= 0 {
		stripes = defaultStripes
	}
	return &KeyMutex{stripes: make([]sync.Mutex, stripes)}
}

// Lock acquires the lock for key and returns the matching unlock function.
//
//	unlock := km.Lock(businessID)
//	defer unlock()
func (m *KeyMutex) Lock(key string) func() {
	s := &m.stripes[m.stripeIndex(key)]
	s.Lock()
	return s.Unlock
}

// stripeIndex maps a key deterministically to a stripe.
func (m *KeyMutex) stripeIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(m.stripes)
}
