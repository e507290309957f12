package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoryEntries bounds the in-memory store. One entry per query; the
// Met department list has 13 entries, so this leaves room for free-text search.
const DefaultMemoryEntries = 64

// MemoryStore is an in-process LRU id-list store. It is the default store and
// lives as long as the fetcher that owns it.
type MemoryStore struct {
	lru *lru.Cache[string, []int]
}

// NewMemoryStore creates a store holding at most size id lists.
func NewMemoryStore(size int) (*MemoryStore, error) {
	if size <= 0 {
		size = DefaultMemoryEntries
	}
	c, err := lru.New[string, []int](size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &MemoryStore{lru: c}, nil
}

// Get returns a copy of the cached id list.
func (m *MemoryStore) Get(_ context.Context, key Key) ([]int, error) {
	ids, ok := m.lru.Get(key.String())
	if !ok {
		CacheMisses.WithLabelValues("memory").Inc()
		return nil, ErrCacheMiss
	}
	CacheHits.WithLabelValues("memory").Inc()
	return cloneIDs(ids), nil
}

// Set stores a copy of ids.
func (m *MemoryStore) Set(_ context.Context, key Key, ids []int) error {
	m.lru.Add(key.String(), cloneIDs(ids))
	CacheEntries.WithLabelValues("memory").Set(float64(m.lru.Len()))
	return nil
}

// Delete removes key.
func (m *MemoryStore) Delete(_ context.Context, key Key) error {
	m.lru.Remove(key.String())
	CacheEntries.WithLabelValues("memory").Set(float64(m.lru.Len()))
	return nil
}

// Len returns the number of cached id lists.
func (m *MemoryStore) Len() int {
	return m.lru.Len()
}
