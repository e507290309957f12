package pagination

import (
	"context"
	"errors"
	"time"

	"github.com/Sternrassler/museum-client/pkg/artwork"
)

// ErrInvalidPage is returned for a page number or page size below one.
var ErrInvalidPage = errors.New("page number and page size must be >= 1")

// Config holds fetcher configuration
type Config struct {
	// PageSize is the number of items per page
	PageSize int
	// MaxConcurrency bounds parallel hydration calls within one page
	MaxConcurrency int
	// HydrateTimeout bounds a single hydration call. Zero means no extra bound.
	HydrateTimeout time.Duration
}

// DefaultConfig returns the page size the galleries render (12) with one
// hydration worker per item.
func DefaultConfig() Config {
	return Config{
		PageSize:       12,
		MaxConcurrency: 12,
		HydrateTimeout: 15 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PageSize <= 0 {
		c.PageSize = d.PageSize
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = d.MaxConcurrency
	}
	if c.HydrateTimeout < 0 {
		c.HydrateTimeout = 0
	}
	return c
}

// Page is one window of hydrated items.
type Page struct {
	Query      string
	Number     int
	Size       int
	TotalPages int
	TotalItems int
	Items      []artwork.Item
}

// Fetcher produces one page of items for a query.
type Fetcher interface {
	FetchPage(ctx context.Context, query string, page int) (Page, error)
}

// Invalidator is implemented by fetchers that cache per-query state.
type Invalidator interface {
	Invalidate(ctx context.Context, query string) error
}

// IDSource is a backend that searches for an ordered id list and hydrates
// items one id at a time (Met-style).
type IDSource interface {
	Search(ctx context.Context, query string) ([]int, error)
	Hydrate(ctx context.Context, id int) (artwork.Item, error)
}

// PageSource is a backend with native pagination (AIC-style). It returns the
// items on the page and the total item count of the listing.
type PageSource interface {
	ListPage(ctx context.Context, page, size int) ([]artwork.Item, int, error)
}

// TotalPages returns ceil(n/size). Zero items is zero pages.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n-1)/size + 1
}

// SliceBounds returns the half-open window [(page-1)*size, page*size) clamped
// to [0, n]. An out-of-range page yields lo == hi == n; the page is checked
// against the page count before multiplying so huge values cannot overflow.
func SliceBounds(n, page, size int) (lo, hi int) {
	if n <= 0 || page < 1 || size < 1 {
		return 0, 0
	}
	if page-1 >= TotalPages(n, size) {
		return n, n
	}
	lo = (page - 1) * size
	if size >= n-lo {
		return lo, n
	}
	return lo, lo + size
}

func validatePage(page, size int) error {
	if page < 1 || size < 1 {
		return ErrInvalidPage
	}
	return nil
}
