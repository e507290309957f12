package cache

import (
	"time"
)

// Entry is the serialized form of a cached id list.
type Entry struct {
	// IDs is the ordered id list returned by the search call.
	IDs []int `json:"ids"`

	// CachedAt is when the list was stored.
	CachedAt time.Time `json:"cached_at"`
}

// cloneIDs copies ids so callers can never mutate a cached list.
func cloneIDs(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
