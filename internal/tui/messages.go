package tui

import "github.com/Sternrassler/museum-client/pkg/pagination"

// pageLoadedMsg carries the session state after a request completed. If the
// request was superseded the state is the newer one.
type pageLoadedMsg struct {
	token pagination.Token
	state pagination.FetchState
}
