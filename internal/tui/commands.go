package tui

import (
	"context"
	"time"

	"github.com/Sternrassler/museum-client/pkg/pagination"
	tea "github.com/charmbracelet/bubbletea"
)

// requestTimeout bounds one page request issued from the browser.
const requestTimeout = 60 * time.Second

// executeCmd runs a request the session has already begun.
func executeCmd(ctx context.Context, session *pagination.Session, req pagination.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		state := session.Execute(ctx, req)
		return pageLoadedMsg{token: req.Token, state: state}
	}
}
