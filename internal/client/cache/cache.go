// Package cache is the client's in-memory store of previous query results.
//
// Entries live in namespaces keyed by the principal that produced them, so
// discarding everything one identity ever saw is a structural operation
// (drop the namespace) rather than a predicate scan over keys. Nothing is
// ever persisted; sign-out clears the whole store.
package cache

import (
	"strings"
	"sync"
)

// GlobalNamespace holds results that are not identity-scoped, such as the
// membership pricing catalog.
const GlobalNamespace = "global"

type entry struct {
	value any
}

// Store is a namespaced key-value cache. Mutation discipline is coarse
// invalidation; there are no per-entry locks.
type Store struct {
	mu         sync.Mutex
	namespaces map[string]map[string]entry
}

func NewStore() *Store {
	return &Store{namespaces: make(map[string]map[string]entry)}
}

// Get returns the cached value for (namespace, key) if present.
func (s *Store) Get(namespace, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil, false
	}
	e, ok := ns[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value under (namespace, key). A nil value is a valid cached
// result (e.g. "no profile yet").
func (s *Store) Set(namespace, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		ns = make(map[string]entry)
		s.namespaces[namespace] = ns
	}
	ns[key] = entry{value: value}
}

// InvalidateKey drops a single cached result.
func (s *Store) InvalidateKey(namespace, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ns, ok := s.namespaces[namespace]; ok {
		delete(ns, key)
	}
}

// InvalidatePrefix drops every cached result in namespace whose key starts
// with prefix. Used for key families like "deal/<id>" where a mutation
// invalidates the whole family.
func (s *Store) InvalidatePrefix(namespace, prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.namespaces[namespace]
	if !ok {
		return
	}
	for key := range ns {
		if strings.HasPrefix(key, prefix) {
			delete(ns, key)
		}
	}
}

// InvalidateNamespace drops every result cached under namespace. Called when
// the connection's bound identity changes, before the new connection is
// published, so stale data can never leak across identities.
func (s *Store) InvalidateNamespace(namespace string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.namespaces, namespace)
}

// Clear drops everything. Used on sign-out.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespaces = make(map[string]map[string]entry)
}

// Len reports the number of live entries across all namespaces.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, ns := range s.namespaces {
		n += len(ns)
	}
	return n
}
