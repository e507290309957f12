package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/Sternrassler/museum-client/pkg/client"
	"github.com/rs/zerolog"
)

func TestNativeFetcher_FetchPage(t *testing.T) {
	source := &fakePageSource{total: 30}
	fetcher := NewNativeFetcher("artic", source, Config{PageSize: 12}, zerolog.Nop())

	page, err := fetcher.FetchPage(context.Background(), "", 3)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	if source.lastPage != 3 || source.lastSize != 12 {
		t.Errorf("ListPage called with (%d, %d), want (3, 12)", source.lastPage, source.lastSize)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if len(page.Items) != 6 {
		t.Errorf("len(Items) = %d, want 6", len(page.Items))
	}
	if page.Items[0].ID != 25 {
		t.Errorf("Items[0].ID = %d, want 25", page.Items[0].ID)
	}
}

func TestNativeFetcher_EmptyCollection(t *testing.T) {
	source := &fakePageSource{total: 0}
	fetcher := NewNativeFetcher("artic", source, Config{PageSize: 12}, zerolog.Nop())

	page, err := fetcher.FetchPage(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if page.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", page.TotalPages)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("Items = %#v, want empty slice", page.Items)
	}
}

func TestNativeFetcher_Failure(t *testing.T) {
	source := &fakePageSource{err: serverError()}
	fetcher := NewNativeFetcher("artic", source, Config{PageSize: 12}, zerolog.Nop())

	_, err := fetcher.FetchPage(context.Background(), "", 1)
	if !client.IsNetworkError(err) {
		t.Fatalf("error = %v, want NetworkError", err)
	}
}

func TestNativeFetcher_InvalidPage(t *testing.T) {
	source := &fakePageSource{total: 10}
	fetcher := NewNativeFetcher("artic", source, Config{PageSize: 12}, zerolog.Nop())

	if _, err := fetcher.FetchPage(context.Background(), "", 0); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("error = %v, want ErrInvalidPage", err)
	}
	if source.calls.Load() != 0 {
		t.Error("invalid page must not reach the backend")
	}
}
