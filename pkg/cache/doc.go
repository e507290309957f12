// Package cache stores the id lists returned by museum search calls so that
// paging through a query never repeats the search.
//
// Two stores implement Store:
//
//   - MemoryStore: bounded in-process LRU (hashicorp/golang-lru). Default.
//   - RedisStore: shared across processes, optional TTL.
//
// Both copy slices on the way in and out; a cached id list is immutable.
//
// # Basic Usage
//
//	store, _ := cache.NewMemoryStore(cache.DefaultMemoryEntries)
//	key := cache.Key{Backend: "met", Query: "Asian Art"}
//
//	ids, err := store.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		ids, err = search(ctx, key.Query)
//		// ...
//		_ = store.Set(ctx, key, ids)
//	}
//
// # Redis
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	store := cache.NewRedisStore(redisClient, 10*time.Minute)
//
// # Metrics
//
//   - museum_idlist_cache_hits_total{store} - Cache hits
//   - museum_idlist_cache_misses_total{store} - Cache misses
//   - museum_idlist_cache_entries{store} - Cached lists (memory store)
//   - museum_idlist_cache_errors_total{operation} - Store operation errors
package cache
