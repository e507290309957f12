package cache

import (
	"context"
	"errors"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Store holds id lists keyed by backend and query. Implementations must be
// safe for concurrent use and must return copies, never shared slices.
type Store interface {
	// Get returns the cached id list or ErrCacheMiss.
	Get(ctx context.Context, key Key) ([]int, error)

	// Set stores ids under key, replacing any previous list.
	Set(ctx context.Context, key Key, ids []int) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key Key) error
}
