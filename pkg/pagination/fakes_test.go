package pagination

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Sternrassler/museum-client/pkg/artwork"
	"github.com/Sternrassler/museum-client/pkg/cache"
	"github.com/Sternrassler/museum-client/pkg/client"
)

// fakeIDSource is an in-memory Met-style backend.
type fakeIDSource struct {
	mu          sync.Mutex
	lists       map[string][]int
	failSearch  error
	failHydrate map[int]error
	maxDelay    time.Duration

	searchCalls  atomic.Int32
	hydrateCalls atomic.Int32
	inFlight     atomic.Int32
	peakInFlight atomic.Int32
}

func newFakeIDSource() *fakeIDSource {
	return &fakeIDSource{
		lists:       make(map[string][]int),
		failHydrate: make(map[int]error),
	}
}

func (f *fakeIDSource) withIDs(query string, n int) *fakeIDSource {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = 1000 + i
	}
	f.lists[query] = ids
	return f
}

func (f *fakeIDSource) Search(ctx context.Context, query string) ([]int, error) {
	f.searchCalls.Add(1)
	if f.failSearch != nil {
		return nil, f.failSearch
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.lists[query]...), nil
}

func (f *fakeIDSource) Hydrate(ctx context.Context, id int) (artwork.Item, error) {
	f.hydrateCalls.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.peakInFlight.Load()
		if n <= peak || f.peakInFlight.CompareAndSwap(peak, n) {
			break
		}
	}

	if f.maxDelay > 0 {
		select {
		case <-time.After(time.Duration(rand.Int63n(int64(f.maxDelay)))):
		case <-ctx.Done():
			return artwork.Item{}, ctx.Err()
		}
	}

	f.mu.Lock()
	err := f.failHydrate[id]
	f.mu.Unlock()
	if err != nil {
		return artwork.Item{}, err
	}
	return artwork.Item{ID: id, Title: fmt.Sprintf("Object %d", id)}.Complete(), nil
}

// fakePageSource is an in-memory AIC-style backend.
type fakePageSource struct {
	total int
	err   error
	calls atomic.Int32

	lastPage, lastSize int
}

func (f *fakePageSource) ListPage(ctx context.Context, page, size int) ([]artwork.Item, int, error) {
	f.calls.Add(1)
	f.lastPage, f.lastSize = page, size
	if f.err != nil {
		return nil, 0, f.err
	}
	lo, hi := SliceBounds(f.total, page, size)
	items := make([]artwork.Item, 0, hi-lo)
	for i := lo; i < hi; i++ {
		items = append(items, artwork.Item{ID: i + 1, Title: fmt.Sprintf("Artwork %d", i+1)}.Complete())
	}
	return items, f.total, nil
}

// failingStore is a cache.Store whose every operation fails.
type failingStore struct{}

func (failingStore) Get(context.Context, cache.Key) ([]int, error) {
	return nil, errors.New("store down")
}
func (failingStore) Set(context.Context, cache.Key, []int) error { return errors.New("store down") }
func (failingStore) Delete(context.Context, cache.Key) error     { return errors.New("store down") }

func serverError() error {
	return &client.NetworkError{Class: client.ErrorClassServer, StatusCode: 500, Message: "500 Internal Server Error"}
}
