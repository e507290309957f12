// Package metrics is the catalogue of Prometheus metrics exported by the museum
// clients. The metrics themselves are defined in their packages (client,
// cache, ratelimit, pagination) via promauto; this package exposes them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the registry every museum metric is registered with.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the gatherer paired with Registry.
var Gatherer = prometheus.DefaultGatherer

// Names lists every metric family the packages register.
var Names = []string{
	// pkg/client
	"museum_requests_total",
	"museum_request_duration_seconds",
	"museum_errors_total",
	"museum_retries_total",
	"museum_retry_backoff_seconds",
	"museum_retry_exhausted_total",
	// pkg/ratelimit
	"museum_rate_limit_wait_seconds",
	"museum_rate_limit_throttles_total",
	// pkg/cache
	"museum_idlist_cache_hits_total",
	"museum_idlist_cache_misses_total",
	"museum_idlist_cache_entries",
	"museum_idlist_cache_errors_total",
	// pkg/pagination
	"museum_page_fetches_total",
	"museum_page_fetch_duration_seconds",
	"museum_hydrations_total",
	"museum_stale_results_total",
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(Gatherer, promhttp.HandlerOpts{})
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - museum_requests_total{host, endpoint, status} (Counter): numeric path segments collapse to :id
//   - museum_request_duration_seconds{host, endpoint} (Histogram)
//   - museum_errors_total{class} (Counter): client, server, rate_limit, network, decode
//
// Retry Metrics (pkg/client, only when MaxRetries > 0):
//   - museum_retries_total{error_class} (Counter)
//   - museum_retry_backoff_seconds{error_class} (Histogram)
//   - museum_retry_exhausted_total{error_class} (Counter)
//
// Rate Limit Metrics (pkg/ratelimit):
//   - museum_rate_limit_wait_seconds{host} (Histogram): time spent waiting for a token
//   - museum_rate_limit_throttles_total{host} (Counter): requests that had to wait
//
// Id-List Cache Metrics (pkg/cache):
//   - museum_idlist_cache_hits_total{store} (Counter): store is memory or redis
//   - museum_idlist_cache_misses_total{store} (Counter)
//   - museum_idlist_cache_entries{store} (Gauge)
//   - museum_idlist_cache_errors_total{operation} (Counter): get, set, delete
//
// Page Metrics (pkg/pagination):
//   - museum_page_fetches_total{backend, result} (Counter)
//   - museum_page_fetch_duration_seconds{backend} (Histogram)
//   - museum_hydrations_total{backend, result} (Counter)
//   - museum_stale_results_total{backend} (Counter): superseded results dropped by a Session
//
// Example Prometheus Queries:
//
//   # Id-list cache hit rate
//   sum(rate(museum_idlist_cache_hits_total[5m])) /
//   (sum(rate(museum_idlist_cache_hits_total[5m])) + sum(rate(museum_idlist_cache_misses_total[5m])))
//
//   # Failed pages per backend
//   sum by (backend) (rate(museum_page_fetches_total{result="error"}[5m]))
//
//   # P95 page latency
//   histogram_quantile(0.95, rate(museum_page_fetch_duration_seconds_bucket[5m]))
