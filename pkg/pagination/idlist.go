package pagination

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sternrassler/museum-client/pkg/artwork"
	"github.com/Sternrassler/museum-client/pkg/cache"
	"github.com/Sternrassler/museum-client/pkg/client"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// IDListFetcher pages over a backend that only returns full id lists from
// search. The id list for a query is fetched once and cached; each page is the
// matching slice of ids, hydrated in parallel.
type IDListFetcher struct {
	backend string
	source  IDSource
	store   cache.Store
	config  Config
	logger  zerolog.Logger
}

// NewIDListFetcher creates a fetcher for an id-list backend. backend names the
// cache namespace and metric label.
func NewIDListFetcher(backend string, source IDSource, store cache.Store, config Config, logger zerolog.Logger) *IDListFetcher {
	if source == nil {
		panic("id source cannot be nil")
	}
	if store == nil {
		panic("id-list store cannot be nil")
	}
	return &IDListFetcher{
		backend: backend,
		source:  source,
		store:   store,
		config:  config.withDefaults(),
		logger:  logger.With().Str("backend", backend).Logger(),
	}
}

// FetchPage returns the one-based page of query. Items keep the order of the
// id list. If any hydration fails the whole page fails; no partial page is
// ever returned.
func (f *IDListFetcher) FetchPage(ctx context.Context, query string, page int) (Page, error) {
	size := f.config.PageSize
	if err := validatePage(page, size); err != nil {
		return Page{}, err
	}

	start := time.Now()
	defer func() {
		museumPageFetchDuration.WithLabelValues(f.backend).Observe(time.Since(start).Seconds())
	}()

	ids, err := f.idList(ctx, query)
	if err != nil {
		museumPageFetchesTotal.WithLabelValues(f.backend, "error").Inc()
		return Page{}, err
	}

	lo, hi := SliceBounds(len(ids), page, size)
	items, err := f.hydrate(ctx, ids[lo:hi])
	museumPageFetchesTotal.WithLabelValues(f.backend, resultLabel(err)).Inc()
	if err != nil {
		f.logger.Error().
			Err(err).
			Str("query", query).
			Int("page", page).
			Msg("Page hydration failed")
		return Page{}, err
	}

	result := Page{
		Query:      query,
		Number:     page,
		Size:       size,
		TotalPages: TotalPages(len(ids), size),
		TotalItems: len(ids),
		Items:      items,
	}

	f.logger.Info().
		Str("query", query).
		Int("page", page).
		Int("total_pages", result.TotalPages).
		Int("items", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Page fetch complete")

	return result, nil
}

// Invalidate drops the cached id list for query.
func (f *IDListFetcher) Invalidate(ctx context.Context, query string) error {
	if err := f.store.Delete(ctx, cache.Key{Backend: f.backend, Query: query}); err != nil {
		return fmt.Errorf("invalidate %q: %w", query, err)
	}
	f.logger.Debug().Str("query", query).Msg("Id list invalidated")
	return nil
}

// idList resolves the id list for query from the store, searching on a miss.
// A failing store is logged and bypassed; only the search can fail the page.
func (f *IDListFetcher) idList(ctx context.Context, query string) ([]int, error) {
	key := cache.Key{Backend: f.backend, Query: query}

	ids, err := f.store.Get(ctx, key)
	if err == nil {
		f.logger.Debug().Str("query", query).Int("ids", len(ids)).Msg("Id list cache hit")
		return ids, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		f.logger.Warn().Err(err).Str("query", query).Msg("Id list store get failed")
	}

	ids, err = f.source.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, client.AsNetworkError(err, "search failed"))
	}

	if err := f.store.Set(ctx, key, ids); err != nil {
		f.logger.Warn().Err(err).Str("query", query).Msg("Id list store set failed")
	}

	f.logger.Debug().Str("query", query).Int("ids", len(ids)).Msg("Id list fetched")
	return ids, nil
}

// hydrate fetches every id concurrently and joins. Results are written by
// index so completion order never affects item order.
func (f *IDListFetcher) hydrate(ctx context.Context, ids []int) ([]artwork.Item, error) {
	items := make([]artwork.Item, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.config.MaxConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			hctx := gctx
			if f.config.HydrateTimeout > 0 {
				var cancel context.CancelFunc
				hctx, cancel = context.WithTimeout(gctx, f.config.HydrateTimeout)
				defer cancel()
			}

			item, err := f.source.Hydrate(hctx, id)
			museumHydrationsTotal.WithLabelValues(f.backend, resultLabel(err)).Inc()
			if err != nil {
				return fmt.Errorf("hydrate object %d: %w", id, client.AsNetworkError(err, "hydration failed"))
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
