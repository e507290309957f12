package pagination

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Sternrassler/museum-client/pkg/cache"
	"github.com/Sternrassler/museum-client/pkg/client"
	"github.com/rs/zerolog"
)

func newIDListFetcher(t *testing.T, source *fakeIDSource, cfg Config) (*IDListFetcher, *cache.MemoryStore) {
	t.Helper()
	store, err := cache.NewMemoryStore(8)
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	return NewIDListFetcher("met", source, store, cfg, zerolog.Nop()), store
}

func TestIDListFetcher_ThirtySevenIDs(t *testing.T) {
	source := newFakeIDSource().withIDs("Asian Art", 37)
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})
	ctx := context.Background()

	page, err := fetcher.FetchPage(ctx, "Asian Art", 4)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	if page.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", page.TotalPages)
	}
	if page.TotalItems != 37 {
		t.Errorf("TotalItems = %d, want 37", page.TotalItems)
	}
	if len(page.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(page.Items))
	}
	if page.Items[0].ID != 1036 {
		t.Errorf("Items[0].ID = %d, want 1036 (index 36)", page.Items[0].ID)
	}
}

func TestIDListFetcher_OrderPreserved(t *testing.T) {
	source := newFakeIDSource().withIDs("Egyptian Art", 30)
	source.maxDelay = 5 * time.Millisecond
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12, MaxConcurrency: 12})
	ctx := context.Background()

	for _, pageNum := range []int{1, 2, 3} {
		page, err := fetcher.FetchPage(ctx, "Egyptian Art", pageNum)
		if err != nil {
			t.Fatalf("FetchPage(%d) error = %v", pageNum, err)
		}
		lo, _ := SliceBounds(30, pageNum, 12)
		for i, item := range page.Items {
			if want := 1000 + lo + i; item.ID != want {
				t.Errorf("page %d Items[%d].ID = %d, want %d", pageNum, i, item.ID, want)
			}
		}
	}
}

func TestIDListFetcher_CachesIDList(t *testing.T) {
	source := newFakeIDSource().withIDs("Islamic Art", 20)
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})
	ctx := context.Background()

	first, err := fetcher.FetchPage(ctx, "Islamic Art", 1)
	if err != nil {
		t.Fatalf("first FetchPage() error = %v", err)
	}
	second, err := fetcher.FetchPage(ctx, "Islamic Art", 1)
	if err != nil {
		t.Fatalf("second FetchPage() error = %v", err)
	}
	if _, err := fetcher.FetchPage(ctx, "Islamic Art", 2); err != nil {
		t.Fatalf("page 2 FetchPage() error = %v", err)
	}

	if source.searchCalls.Load() != 1 {
		t.Errorf("search calls = %d, want 1", source.searchCalls.Load())
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Errorf("Items[%d] differ: %+v vs %+v", i, first.Items[i], second.Items[i])
		}
	}
}

func TestIDListFetcher_Invalidate(t *testing.T) {
	source := newFakeIDSource().withIDs("Musical Instruments", 3)
	fetcher, store := newIDListFetcher(t, source, Config{PageSize: 12})
	ctx := context.Background()

	fetcher.FetchPage(ctx, "Musical Instruments", 1)
	if store.Len() != 1 {
		t.Fatalf("store Len() = %d, want 1", store.Len())
	}

	if err := fetcher.Invalidate(ctx, "Musical Instruments"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	fetcher.FetchPage(ctx, "Musical Instruments", 1)

	if source.searchCalls.Load() != 2 {
		t.Errorf("search calls = %d, want 2 after invalidation", source.searchCalls.Load())
	}
}

func TestIDListFetcher_OutOfRangePage(t *testing.T) {
	source := newFakeIDSource().withIDs("Arms and Armor", 5)
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})

	page, err := fetcher.FetchPage(context.Background(), "Arms and Armor", 3)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(page.Items))
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.TotalPages)
	}
	if source.hydrateCalls.Load() != 0 {
		t.Errorf("hydrate calls = %d, want 0", source.hydrateCalls.Load())
	}
}

func TestIDListFetcher_HugePageNumber(t *testing.T) {
	source := newFakeIDSource().withIDs("Asian Art", 37)
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})
	ctx := context.Background()

	for _, pageNum := range []int{math.MaxInt/12 + 2, math.MaxInt} {
		page, err := fetcher.FetchPage(ctx, "Asian Art", pageNum)
		if err != nil {
			t.Fatalf("FetchPage(%d) error = %v", pageNum, err)
		}
		if page.Items == nil || len(page.Items) != 0 {
			t.Errorf("FetchPage(%d) Items = %v, want empty", pageNum, page.Items)
		}
		if page.TotalPages != 4 {
			t.Errorf("FetchPage(%d) TotalPages = %d, want 4", pageNum, page.TotalPages)
		}
	}

	session := NewSession("met", fetcher, zerolog.Nop())
	state := session.Fetch(ctx, "Asian Art", math.MaxInt/12+2)
	if state.Status != StatusReady {
		t.Errorf("Status = %s, want ready", state.Status)
	}
	if source.hydrateCalls.Load() != 0 {
		t.Errorf("hydrate calls = %d, want 0", source.hydrateCalls.Load())
	}
}

func TestIDListFetcher_EmptyResult(t *testing.T) {
	source := newFakeIDSource()
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})

	page, err := fetcher.FetchPage(context.Background(), "Nothing Here", 1)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if page.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", page.TotalPages)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("Items = %#v, want empty", page.Items)
	}
}

func TestIDListFetcher_SearchFailure(t *testing.T) {
	source := newFakeIDSource()
	source.failSearch = serverError()
	fetcher, store := newIDListFetcher(t, source, Config{PageSize: 12})

	_, err := fetcher.FetchPage(context.Background(), "Asian Art", 1)
	if !client.IsNetworkError(err) {
		t.Fatalf("error = %v, want NetworkError", err)
	}
	if store.Len() != 0 {
		t.Error("failed search must not be cached")
	}
}

func TestIDListFetcher_SearchPlainErrorBecomesNetworkError(t *testing.T) {
	source := newFakeIDSource()
	source.failSearch = errors.New("dial tcp: no such host")
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})

	_, err := fetcher.FetchPage(context.Background(), "Asian Art", 1)
	if !client.IsNetworkError(err) {
		t.Fatalf("error = %v, want NetworkError", err)
	}
}

func TestIDListFetcher_HydrationFailureFailsPage(t *testing.T) {
	source := newFakeIDSource().withIDs("European Paintings", 12)
	source.failHydrate[1005] = serverError()
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})

	page, err := fetcher.FetchPage(context.Background(), "European Paintings", 1)
	if err == nil {
		t.Fatal("expected error when one hydration fails")
	}
	if !client.IsNetworkError(err) {
		t.Errorf("error = %v, want NetworkError", err)
	}
	if page.Items != nil {
		t.Errorf("partial items exposed: %d", len(page.Items))
	}
}

func TestIDListFetcher_ConcurrencyBound(t *testing.T) {
	source := newFakeIDSource().withIDs("Modern and Contemporary Art", 12)
	source.maxDelay = 5 * time.Millisecond
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12, MaxConcurrency: 3})

	if _, err := fetcher.FetchPage(context.Background(), "Modern and Contemporary Art", 1); err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if peak := source.peakInFlight.Load(); peak > 3 {
		t.Errorf("peak in-flight hydrations = %d, want <= 3", peak)
	}
	if source.hydrateCalls.Load() != 12 {
		t.Errorf("hydrate calls = %d, want 12", source.hydrateCalls.Load())
	}
}

func TestIDListFetcher_InvalidPage(t *testing.T) {
	source := newFakeIDSource().withIDs("Asian Art", 5)
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})

	for _, p := range []int{0, -1} {
		if _, err := fetcher.FetchPage(context.Background(), "Asian Art", p); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("FetchPage(page=%d) error = %v, want ErrInvalidPage", p, err)
		}
	}
	if source.searchCalls.Load() != 0 {
		t.Error("invalid page must not reach the backend")
	}
}

func TestIDListFetcher_StoreFailureFallsBackToSearch(t *testing.T) {
	source := newFakeIDSource().withIDs("Costume Institute", 4)
	fetcher := NewIDListFetcher("met", source, failingStore{}, Config{PageSize: 12}, zerolog.Nop())

	page, err := fetcher.FetchPage(context.Background(), "Costume Institute", 1)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if len(page.Items) != 4 {
		t.Errorf("len(Items) = %d, want 4", len(page.Items))
	}
}

func TestIDListFetcher_ContextCancelled(t *testing.T) {
	source := newFakeIDSource().withIDs("Greek and Roman Art", 12)
	source.maxDelay = time.Second
	fetcher, _ := newIDListFetcher(t, source, Config{PageSize: 12})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := fetcher.FetchPage(ctx, "Greek and Roman Art", 1); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestNewIDListFetcher_Panics(t *testing.T) {
	store, _ := cache.NewMemoryStore(1)

	t.Run("nil source", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for nil source")
			}
		}()
		NewIDListFetcher("met", nil, store, Config{}, zerolog.Nop())
	})

	t.Run("nil store", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for nil store")
			}
		}()
		NewIDListFetcher("met", newFakeIDSource(), nil, Config{}, zerolog.Nop())
	})
}
