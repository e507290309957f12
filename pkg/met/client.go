// Package met is the Metropolitan Museum of Art collection backend. The Met
// search returns only object ids, so pages are built by pagination's
// IDListFetcher from Search and Hydrate.
package met

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sternrassler/museum-client/pkg/artwork"
	"github.com/Sternrassler/museum-client/pkg/cache"
	"github.com/Sternrassler/museum-client/pkg/client"
	"github.com/Sternrassler/museum-client/pkg/logging"
	"github.com/Sternrassler/museum-client/pkg/pagination"
	"github.com/rs/zerolog"
)

// Backend is the backend name used in logs, metrics and cache keys.
const Backend = "met"

// DefaultBaseURL is the public collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// Config holds the Met adapter configuration.
type Config struct {
	// BaseURL is the API root without trailing slash.
	BaseURL string

	// HasImages restricts searches to objects with images.
	HasImages bool
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		HasImages: true,
	}
}

// Client implements pagination.IDSource against the Met API.
type Client struct {
	http      *client.Client
	baseURL   string
	hasImages bool
	logger    zerolog.Logger
}

// New creates a Met adapter on top of the shared HTTP client.
func New(httpClient *client.Client, cfg Config) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid met base url %q: %w", cfg.BaseURL, err)
	}

	return &Client{
		http:      httpClient,
		baseURL:   base,
		hasImages: cfg.HasImages,
		logger:    logging.NewBackendLogger("met", Backend),
	}, nil
}

// Search returns the object ids matching query, in the order the API lists them.
func (c *Client) Search(ctx context.Context, query string) ([]int, error) {
	params := url.Values{}
	params.Set("q", query)
	if c.hasImages {
		params.Set("hasImages", "true")
	}

	var resp searchResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/search", params, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", query).
		Int("total", resp.Total).
		Int("ids", len(resp.ObjectIDs)).
		Msg("Search complete")

	if resp.ObjectIDs == nil {
		return []int{}, nil
	}
	return resp.ObjectIDs, nil
}

// Hydrate fetches one object and maps it to an artwork.Item.
func (c *Client) Hydrate(ctx context.Context, id int) (artwork.Item, error) {
	var obj objectResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/objects/"+strconv.Itoa(id), nil, &obj); err != nil {
		return artwork.Item{}, err
	}
	return toItem(id, obj), nil
}

// NewFetcher builds the page fetcher for the Met: an IDListFetcher over this
// client with id lists kept in store.
func NewFetcher(c *Client, store cache.Store, cfg pagination.Config, logger zerolog.Logger) *pagination.IDListFetcher {
	return pagination.NewIDListFetcher(Backend, c, store, cfg, logger)
}
