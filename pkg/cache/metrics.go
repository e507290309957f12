package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks id-list cache hits by store (memory, redis)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_idlist_cache_hits_total",
			Help: "Total number of id-list cache hits",
		},
		[]string{"store"},
	)

	// CacheMisses tracks id-list cache misses by store
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_idlist_cache_misses_total",
			Help: "Total number of id-list cache misses",
		},
		[]string{"store"},
	)

	// CacheEntries tracks the number of cached id lists by store
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "museum_idlist_cache_entries",
			Help: "Current number of cached id lists",
		},
		[]string{"store"},
	)

	// CacheErrors tracks cache operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museum_idlist_cache_errors_total",
			Help: "Total number of id-list cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
