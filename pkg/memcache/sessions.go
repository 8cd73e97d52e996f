// pkg/memcache/sessions.go
package mem

import (
	"sync"
	"time"
)

// SessionStore keeps short lived values keyed by an opaque id. Every read
// pushes the expiry forward, so only idle sessions time out.
type SessionStore[V any] interface {
	Set(id string, value V)

	// Get returns the value and refreshes its expiry. Missing or expired
	// ids report false.
	Get(id string) (V, bool)

	Delete(id string) bool

	// Len counts sessions that have not expired yet.
	Len() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type Sessions[V any] struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]entry[V]
}

func NewSessions[V any](ttl time.Duration) *Sessions[V] {
	return &Sessions[V]{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]entry[V]),
	}
}

func (s *Sessions[V]) Set(id string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.data[id] = entry[V]{value: value, expiresAt: s.now().Add(s.ttl)}
}

func (s *Sessions[V]) Get(id string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.data[id]
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return zero, false
	}
	e.expiresAt = s.now().Add(s.ttl)
	s.data[id] = e
	return e.value, true
}

func (s *Sessions[V]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[id]
	delete(s.data, id)
	return ok
}

func (s *Sessions[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.data)
}

func (s *Sessions[V]) sweepLocked() {
	now := s.now()
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
		}
	}
}
