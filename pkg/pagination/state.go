package pagination

import (
	"github.com/Sternrassler/museum-client/pkg/artwork"
)

// Status is the phase of a FetchState.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Token identifies one page request. Tokens increase monotonically per
// Session; only the result carrying the latest token is applied.
type Token uint64

// FetchState is the single live state of a Session.
type FetchState struct {
	Status     Status
	Token      Token
	Query      string
	Page       int
	TotalPages int
	TotalItems int
	Items      []artwork.Item
	Err        error
}

// Message returns the failure message, or "" when not failed.
func (s FetchState) Message() string {
	if s.Status != StatusFailed || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// HasPrevious reports whether a previous page exists.
func (s FetchState) HasPrevious() bool {
	return s.Page > 1
}

// HasNext reports whether a next page exists.
func (s FetchState) HasNext() bool {
	return s.Page >= 1 && s.Page < s.TotalPages
}

// Event drives Transition.
type Event interface {
	isEvent()
}

// Requested starts a new request; it supersedes whatever is in flight.
type Requested struct {
	Token Token
	Query string
	Page  int
}

// Loaded carries a successful page for the request with Token.
type Loaded struct {
	Token  Token
	Result Page
}

// Failed carries the failure of the request with Token.
type Failed struct {
	Token Token
	Err   error
}

func (Requested) isEvent() {}
func (Loaded) isEvent()    {}
func (Failed) isEvent()    {}

// Transition is the pure state function of a Session. Results whose token is
// not the state's token are stale and leave the state unchanged, as does a
// request older than the current one.
func Transition(s FetchState, ev Event) FetchState {
	switch e := ev.(type) {
	case Requested:
		if e.Token <= s.Token {
			return s
		}
		next := FetchState{
			Status: StatusLoading,
			Token:  e.Token,
			Query:  e.Query,
			Page:   e.Page,
		}
		// Same query keeps its page count so navigation stays enabled while loading.
		if e.Query == s.Query {
			next.TotalPages = s.TotalPages
			next.TotalItems = s.TotalItems
		}
		return next

	case Loaded:
		if e.Token != s.Token || s.Status != StatusLoading {
			return s
		}
		items := e.Result.Items
		if items == nil {
			items = []artwork.Item{}
		}
		return FetchState{
			Status:     StatusReady,
			Token:      s.Token,
			Query:      s.Query,
			Page:       s.Page,
			TotalPages: e.Result.TotalPages,
			TotalItems: e.Result.TotalItems,
			Items:      items,
		}

	case Failed:
		if e.Token != s.Token || s.Status != StatusLoading {
			return s
		}
		return FetchState{
			Status:     StatusFailed,
			Token:      s.Token,
			Query:      s.Query,
			Page:       s.Page,
			TotalPages: s.TotalPages,
			TotalItems: s.TotalItems,
			Err:        e.Err,
		}
	}
	return s
}
