// Package cache keeps hot public reads (settings, pages, menus, content lists)
// in memory. Any admin write clears it.
package cache

import (
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
)

type entry struct {
	value   any
	expires time.Time
}

// Store is a size-bounded LRU with per-entry TTL. Safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	lru *lru.Cache
	ttl time.Duration
	now func() time.Time
}

func New(maxEntries int, ttl time.Duration) *Store {
	if maxEntries <= 0 {
		maxEntries = 512
	}
	return &Store{lru: lru.New(maxEntries), ttl: ttl, now: time.Now}
}

func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.lru.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if s.ttl > 0 && s.now().After(e.expires) {
		s.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(key string, value any) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Add(key, entry{value: value, expires: s.now().Add(s.ttl)})
}

// Clear drops everything.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lru.Clear()
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

var (
	publicMu sync.RWMutex
	public   = New(512, 5*time.Minute)
)

// Public is the process-wide store for public read endpoints.
func Public() *Store {
	publicMu.RLock()
	defer publicMu.RUnlock()
	return public
}

// SetPublic replaces the process-wide store (configured TTL, tests).
func SetPublic(s *Store) {
	publicMu.Lock()
	public = s
	publicMu.Unlock()
}

// Remember returns the cached value for key or loads, stores and returns it.
// Load errors are not cached.
func Remember[T any](s *Store, key string, load func() (T, error)) (T, error) {
	if v, ok := s.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	s.Set(key, v)
	return v, nil
}
