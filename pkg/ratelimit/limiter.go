// Package ratelimit paces outbound requests per museum API host.
// Each host gets its own token bucket so a slow Met hydration burst never
// delays an AIC listing call.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Prometheus metrics for request pacing.
var (
	museumRateLimitWaitSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "museum_rate_limit_wait_seconds",
		Help:    "Time spent waiting for a request token by host",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"host"})

	museumRateLimitThrottlesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_rate_limit_throttles_total",
		Help: "Total number of requests delayed by the rate limiter by host",
	}, []string{"host"})
)

// throttleThreshold is the wait above which a request counts as throttled.
const throttleThreshold = time.Millisecond

// Config holds limiter configuration.
type Config struct {
	// RequestsPerSecond per host. Zero or negative disables pacing.
	RequestsPerSecond float64

	// Burst is the bucket size per host.
	Burst int
}

// DefaultConfig returns the pacing the Met publishes as its limit (80 req/s).
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 80,
		Burst:             10,
	}
}

// HostLimiter hands out request tokens per host.
type HostLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	disabled bool
	logger   zerolog.Logger
}

// NewHostLimiter creates a limiter. A non-positive rate yields a limiter that never blocks.
func NewHostLimiter(cfg Config, logger zerolog.Logger) *HostLimiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    burst,
		disabled: cfg.RequestsPerSecond <= 0,
		logger:   logger,
	}
}

// Wait blocks until a token for host is available or ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	if h.disabled {
		return nil
	}
	if host == "" {
		return fmt.Errorf("rate limit: empty host")
	}

	start := time.Now()
	if err := h.limiterFor(host).Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", host, err)
	}

	waited := time.Since(start)
	museumRateLimitWaitSeconds.WithLabelValues(host).Observe(waited.Seconds())
	if waited > throttleThreshold {
		museumRateLimitThrottlesTotal.WithLabelValues(host).Inc()
		h.logger.Debug().
			Str("host", host).
			Dur("waited", waited).
			Msg("Request throttled")
	}
	return nil
}

func (h *HostLimiter) limiterFor(host string) *rate.Limiter {
	h.mu.RLock()
	limiter, ok := h.limiters[host]
	h.mu.RUnlock()
	if ok {
		return limiter
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if limiter, ok := h.limiters[host]; ok {
		return limiter
	}
	limiter = rate.NewLimiter(h.limit, h.burst)
	h.limiters[host] = limiter
	return limiter
}
