package pagination

import (
	"context"
	"sync"

	"github.com/Sternrassler/museum-client/pkg/cache"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Request is a page request issued by a Session.
type Request struct {
	Token Token
	Query string
	Page  int
}

// Session owns the FetchState of one browsing UI. It issues request tokens so
// that when requests overlap the latest one wins, and it invalidates the
// previous query's cached id list when the query changes.
//
// A Session is safe for concurrent use; a UI goroutine may Begin a request
// while an earlier Execute is still running.
type Session struct {
	mu      sync.Mutex
	backend string
	fetcher Fetcher
	state   FetchState
	last    Token
	logger  zerolog.Logger
}

// NewSession creates an idle session over fetcher.
func NewSession(backend string, fetcher Fetcher, logger zerolog.Logger) *Session {
	if fetcher == nil {
		panic("fetcher cannot be nil")
	}
	return &Session{
		backend: backend,
		fetcher: fetcher,
		logger:  logger.With().Str("backend", backend).Logger(),
	}
}

// State returns a snapshot of the current state.
func (s *Session) State() FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Begin issues a new request and moves the state to loading. Selecting a
// different query invalidates the previous query's id list; queries that only
// differ in case or spacing share one list and are not invalidated.
func (s *Session) Begin(ctx context.Context, query string, page int) Request {
	s.mu.Lock()
	previous := s.state.Query
	s.last++
	req := Request{Token: s.last, Query: query, Page: page}
	s.state = Transition(s.state, Requested(req))
	s.mu.Unlock()

	if previous != "" && !s.sameList(previous, query) {
		if inv, ok := s.fetcher.(Invalidator); ok {
			if err := inv.Invalidate(ctx, previous); err != nil {
				s.logger.Warn().Err(err).Str("query", previous).Msg("Failed to invalidate previous query")
			}
		}
	}

	return req
}

// Execute runs req against the fetcher and applies the result. The returned
// state is the session's state afterwards; if req was superseded in the
// meantime its result is discarded and the newer state is returned.
func (s *Session) Execute(ctx context.Context, req Request) FetchState {
	requestID := uuid.NewString()
	s.logger.Debug().
		Str("request_id", requestID).
		Uint64("token", uint64(req.Token)).
		Str("query", req.Query).
		Int("page", req.Page).
		Msg("Executing page request")

	page, err := s.fetcher.FetchPage(ctx, req.Query, req.Page)
	return s.complete(req, page, err, requestID)
}

// Fetch issues and executes a request for (query, page).
func (s *Session) Fetch(ctx context.Context, query string, page int) FetchState {
	return s.Execute(ctx, s.Begin(ctx, query, page))
}

// Select switches to query and loads its first page.
func (s *Session) Select(ctx context.Context, query string) FetchState {
	return s.Fetch(ctx, query, 1)
}

// BeginNext issues a request for the next page. It is a no-op returning false
// on the last page.
func (s *Session) BeginNext(ctx context.Context) (Request, bool) {
	current := s.State()
	if !current.HasNext() {
		return Request{}, false
	}
	return s.Begin(ctx, current.Query, current.Page+1), true
}

// BeginPrevious issues a request for the previous page. It is a no-op
// returning false on page one.
func (s *Session) BeginPrevious(ctx context.Context) (Request, bool) {
	current := s.State()
	if !current.HasPrevious() {
		return Request{}, false
	}
	return s.Begin(ctx, current.Query, current.Page-1), true
}

// BeginReload re-issues the current query and page.
func (s *Session) BeginReload(ctx context.Context) Request {
	current := s.State()
	page := current.Page
	if page < 1 {
		page = 1
	}
	return s.Begin(ctx, current.Query, page)
}

// Next loads the next page. On the last page it returns the current state and false.
func (s *Session) Next(ctx context.Context) (FetchState, bool) {
	req, ok := s.BeginNext(ctx)
	if !ok {
		return s.State(), false
	}
	return s.Execute(ctx, req), true
}

// Previous loads the previous page. On page one it returns the current state and false.
func (s *Session) Previous(ctx context.Context) (FetchState, bool) {
	req, ok := s.BeginPrevious(ctx)
	if !ok {
		return s.State(), false
	}
	return s.Execute(ctx, req), true
}

// Reload re-fetches the current page; this is the recovery action after a failure.
func (s *Session) Reload(ctx context.Context) FetchState {
	return s.Execute(ctx, s.BeginReload(ctx))
}

func (s *Session) complete(req Request, page Page, err error, requestID string) FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Token != s.state.Token {
		museumStaleResultsTotal.WithLabelValues(s.backend).Inc()
		s.logger.Debug().
			Str("request_id", requestID).
			Uint64("token", uint64(req.Token)).
			Uint64("current_token", uint64(s.state.Token)).
			Msg("Discarding stale page result")
		return s.snapshot()
	}

	if err != nil {
		s.state = Transition(s.state, Failed{Token: req.Token, Err: err})
	} else {
		s.state = Transition(s.state, Loaded{Token: req.Token, Result: page})
	}
	return s.snapshot()
}

func (s *Session) sameList(a, b string) bool {
	return cache.Key{Backend: s.backend, Query: a}.String() == cache.Key{Backend: s.backend, Query: b}.String()
}

// snapshot copies the state; callers must hold mu.
func (s *Session) snapshot() FetchState {
	out := s.state
	if s.state.Items != nil {
		out.Items = append(out.Items[:0:0], s.state.Items...)
	}
	return out
}
