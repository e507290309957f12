// Package client provides the HTTP transport shared by the museum backends:
// request pacing, optional retry, and classification of every failure into a
// single NetworkError kind.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sternrassler/museum-client/pkg/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for museum API requests.
var (
	museumRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_requests_total",
		Help: "Total museum API requests by host, endpoint and status",
	}, []string{"host", "endpoint", "status"})

	museumRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "museum_request_duration_seconds",
		Help:    "Museum API request duration in seconds by host and endpoint",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"host", "endpoint"})

	museumErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "museum_errors_total",
		Help: "Total museum API errors by class",
	}, []string{"class"})
)

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors other than 429.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassRateLimit represents 429 Too Many Requests.
	ErrorClassRateLimit ErrorClass = "rate_limit"

	// ErrorClassNetwork represents transport failures (DNS, refused, timeout).
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassDecode represents a 2xx response whose body is not the expected JSON.
	ErrorClassDecode ErrorClass = "decode"
)

// Client is the HTTP client used by every museum backend.
type Client struct {
	httpClient *http.Client
	limiter    *ratelimit.HostLimiter
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// User-Agent header sent with every request.
	UserAgent string

	// Timeout per HTTP request. Zero means no client-side timeout.
	Timeout time.Duration

	// RateLimit paces requests per host.
	RateLimit ratelimit.Config

	// Retry. MaxRetries of zero surfaces failures immediately.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(userAgent string) Config {
	return Config{
		UserAgent:      userAgent,
		Timeout:        30 * time.Second,
		RateLimit:      ratelimit.DefaultConfig(),
		MaxRetries:     0,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
	}
}

// New creates a new museum API client.
func New(cfg Config) (*Client, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("max_retries must be >= 0 (got %d)", cfg.MaxRetries)
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be >= 0 (got %s)", cfg.Timeout)
	}

	logger := log.With().Str("component", "museum-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: ratelimit.NewHostLimiter(cfg.RateLimit, logger),
		config:  cfg,
		logger:  logger,
	}, nil
}

// Do performs an HTTP request with pacing, optional retry and error
// classification. Any non-2xx response is returned as a *NetworkError with the
// body already closed; on success the caller owns the response body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	host := req.URL.Host
	endpoint := endpointLabel(req.URL.Path)

	startTime := time.Now()
	defer func() {
		museumRequestDuration.WithLabelValues(host, endpoint).Observe(time.Since(startTime).Seconds())
	}()

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	var resp *http.Response

	err := retryWithBackoff(ctx, c.config, c.logger, func() error {
		if err := c.limiter.Wait(ctx, host); err != nil {
			return &NetworkError{
				Class:   ErrorClassNetwork,
				URL:     req.URL.String(),
				Message: "rate limiter wait aborted",
				Err:     err,
			}
		}

		c.logger.Debug().
			Str("host", host).
			Str("endpoint", endpoint).
			Str("method", req.Method).
			Msg("Executing museum request")

		var reqErr error
		resp, reqErr = c.httpClient.Do(req)
		if reqErr != nil {
			museumErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
			museumRequestsTotal.WithLabelValues(host, endpoint, "network_error").Inc()
			c.logger.Error().Err(reqErr).Str("host", host).Str("endpoint", endpoint).Msg("HTTP request failed")
			return &NetworkError{
				Class:   ErrorClassNetwork,
				URL:     req.URL.String(),
				Message: "request failed",
				Err:     reqErr,
			}
		}

		museumRequestsTotal.WithLabelValues(host, endpoint, strconv.Itoa(resp.StatusCode)).Inc()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			errClass := classifyStatus(resp.StatusCode)
			museumErrorsTotal.WithLabelValues(string(errClass)).Inc()

			c.logger.Warn().
				Str("host", host).
				Str("endpoint", endpoint).
				Int("status_code", resp.StatusCode).
				Str("error_class", string(errClass)).
				Msg("Museum request error")

			io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return &NetworkError{
				Class:      errClass,
				StatusCode: resp.StatusCode,
				URL:        req.URL.String(),
				Message:    resp.Status,
			}
		}

		return nil
	}, classifyError)

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Get performs a GET request against rawURL with the given query parameters.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.Do(req)
}

// GetJSON performs a GET and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, out any) error {
	resp, err := c.Get(ctx, rawURL, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		museumErrorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		return &NetworkError{
			Class:      ErrorClassDecode,
			StatusCode: resp.StatusCode,
			URL:        resp.Request.URL.String(),
			Message:    "decode response body",
			Err:        err,
		}
	}
	return nil
}

// classifyStatus maps a non-success HTTP status to an ErrorClass.
func classifyStatus(status int) ErrorClass {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrorClassRateLimit
	case status >= 400 && status < 500:
		return ErrorClassClient
	case status >= 500:
		return ErrorClassServer
	default:
		// 1xx/3xx that the transport did not resolve.
		return ErrorClassClient
	}
}

// classifyError extracts the ErrorClass carried by err.
func classifyError(err error) ErrorClass {
	if netErr := AsNetworkError(err, ""); netErr != nil {
		return netErr.Class
	}
	return ""
}

// endpointLabel collapses numeric path segments so per-object URLs share one
// metric series: /public/collection/v1/objects/436535 -> /public/collection/v1/objects/:id
func endpointLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if _, err := strconv.Atoi(seg); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
