package pagination

import (
	"context"
	"fmt"
	"time"

	"github.com/Sternrassler/museum-client/pkg/artwork"
	"github.com/Sternrassler/museum-client/pkg/client"
	"github.com/rs/zerolog"
)

// NativeFetcher pages over a backend that paginates itself. Each page is a
// single listing call.
type NativeFetcher struct {
	backend string
	source  PageSource
	config  Config
	logger  zerolog.Logger
}

// NewNativeFetcher creates a fetcher for a natively paginated backend.
func NewNativeFetcher(backend string, source PageSource, config Config, logger zerolog.Logger) *NativeFetcher {
	if source == nil {
		panic("page source cannot be nil")
	}
	return &NativeFetcher{
		backend: backend,
		source:  source,
		config:  config.withDefaults(),
		logger:  logger.With().Str("backend", backend).Logger(),
	}
}

// FetchPage returns the one-based page. query is ignored: the listing is the
// whole collection.
func (f *NativeFetcher) FetchPage(ctx context.Context, query string, page int) (Page, error) {
	size := f.config.PageSize
	if err := validatePage(page, size); err != nil {
		return Page{}, err
	}

	start := time.Now()
	defer func() {
		museumPageFetchDuration.WithLabelValues(f.backend).Observe(time.Since(start).Seconds())
	}()

	items, total, err := f.source.ListPage(ctx, page, size)
	museumPageFetchesTotal.WithLabelValues(f.backend, resultLabel(err)).Inc()
	if err != nil {
		f.logger.Error().Err(err).Int("page", page).Msg("Page listing failed")
		return Page{}, fmt.Errorf("list page %d: %w", page, client.AsNetworkError(err, "listing failed"))
	}

	if total < 0 {
		total = 0
	}

	result := Page{
		Query:      query,
		Number:     page,
		Size:       size,
		TotalPages: TotalPages(total, size),
		TotalItems: total,
		Items:      items,
	}
	if result.Items == nil {
		result.Items = []artwork.Item{}
	}

	f.logger.Info().
		Int("page", page).
		Int("total_pages", result.TotalPages).
		Int("items", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Page fetch complete")

	return result, nil
}
