// Package artic is the Art Institute of Chicago backend. The AIC API paginates
// natively, so each page is one listing call wrapped by pagination's
// NativeFetcher.
package artic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sternrassler/museum-client/pkg/artwork"
	"github.com/Sternrassler/museum-client/pkg/client"
	"github.com/Sternrassler/museum-client/pkg/logging"
	"github.com/Sternrassler/museum-client/pkg/pagination"
	"github.com/rs/zerolog"
)

// Backend is the backend name used in logs and metrics.
const Backend = "artic"

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://api.artic.edu/api/v1"

	// DefaultIIIFBase is the IIIF image service root used to build image URLs.
	DefaultIIIFBase = "https://www.artic.edu/iiif/2"
)

// listFields is the field selection sent with every listing call.
var listFields = []string{"id", "title", "artist_title", "image_id", "date_display"}

// Config holds the AIC adapter configuration.
type Config struct {
	BaseURL  string
	IIIFBase string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		IIIFBase: DefaultIIIFBase,
	}
}

// Client implements pagination.PageSource against the AIC API.
type Client struct {
	http     *client.Client
	baseURL  string
	iiifBase string
	logger   zerolog.Logger
}

// New creates an AIC adapter on top of the shared HTTP client.
func New(httpClient *client.Client, cfg Config) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}

	base, err := normalizeBase(cfg.BaseURL, DefaultBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid artic base url: %w", err)
	}
	iiif, err := normalizeBase(cfg.IIIFBase, DefaultIIIFBase)
	if err != nil {
		return nil, fmt.Errorf("invalid artic iiif base: %w", err)
	}

	return &Client{
		http:     httpClient,
		baseURL:  base,
		iiifBase: iiif,
		logger:   logging.NewBackendLogger("artic", Backend),
	}, nil
}

// ListPage fetches one page of artworks and the collection total.
func (c *Client) ListPage(ctx context.Context, page, size int) ([]artwork.Item, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(size))
	params.Set("fields", strings.Join(listFields, ","))

	var resp listResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/artworks", params, &resp); err != nil {
		return nil, 0, err
	}

	items := make([]artwork.Item, 0, len(resp.Data))
	for _, rec := range resp.Data {
		items = append(items, toItem(rec, c.iiifBase))
	}

	c.logger.Debug().
		Int("page", page).
		Int("items", len(items)).
		Int("total", resp.Pagination.Total).
		Msg("Listing complete")

	return items, resp.Pagination.Total, nil
}

// NewFetcher builds the page fetcher for the AIC.
func NewFetcher(c *Client, cfg pagination.Config, logger zerolog.Logger) *pagination.NativeFetcher {
	return pagination.NewNativeFetcher(Backend, c, cfg, logger)
}

func normalizeBase(raw, fallback string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return fallback, nil
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return "", err
	}
	return base, nil
}
