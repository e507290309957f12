// Package tui is the interactive page browser. All page state lives in a
// pagination.Session; the model only tracks the department cursor and
// renders the session's current state.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sternrassler/museum-client/internal/output"
	"github.com/Sternrassler/museum-client/pkg/pagination"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a browser.
type Options struct {
	// Title is shown in the header.
	Title string

	// Queries are the selectable queries (Met departments). Empty means the
	// backend has a single collection-wide listing.
	Queries []string

	// Initial is the query loaded on start.
	Initial string
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx     context.Context
	session *pagination.Session
	opts    Options

	cursor  int
	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	width   int
}

// New creates a browser over session.
func New(ctx context.Context, session *pagination.Session, opts Options) Model {
	cursor := 0
	for i, q := range opts.Queries {
		if q == opts.Initial {
			cursor = i
		}
	}
	if opts.Initial == "" && len(opts.Queries) > 0 {
		opts.Initial = opts.Queries[0]
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(accent)),
	)

	return Model{
		ctx:     ctx,
		session: session,
		opts:    opts,
		cursor:  cursor,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
	}
}

// Init starts the spinner and loads the first page of the initial query.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.begin(m.opts.Initial, 1))
}

// Update handles keys and page results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pageLoadedMsg:
		// Rendering reads the session directly; nothing to store.
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if req, ok := m.session.BeginNext(m.ctx); ok {
			return m, executeCmd(m.ctx, m.session, req)
		}

	case key.Matches(msg, m.keys.Prev):
		if req, ok := m.session.BeginPrevious(m.ctx); ok {
			return m, executeCmd(m.ctx, m.session, req)
		}

	case key.Matches(msg, m.keys.Reload):
		return m, executeCmd(m.ctx, m.session, m.session.BeginReload(m.ctx))

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.opts.Queries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.opts.Queries) > 0 {
			return m, m.begin(m.opts.Queries[m.cursor], 1)
		}
	}
	return m, nil
}

func (m Model) begin(query string, page int) tea.Cmd {
	return executeCmd(m.ctx, m.session, m.session.Begin(m.ctx, query, page))
}

// View renders the browser.
func (m Model) View() string {
	state := m.session.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n\n")

	main := m.renderPage(state)
	if len(m.opts.Queries) > 0 {
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.renderQueries(state.Query), "  ", main)
	}
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderQueries(active string) string {
	lines := make([]string, len(m.opts.Queries))
	for i, q := range m.opts.Queries {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		line := prefix + q
		if q == active {
			line = selectedStyle.Render(line)
		}
		lines[i] = line
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderPage(state pagination.FetchState) string {
	var b strings.Builder

	switch state.Status {
	case pagination.StatusLoading:
		b.WriteString(m.spinner.View() + " " + output.PageStatus(state) + "\n")
	case pagination.StatusFailed:
		b.WriteString(errorStyle.Render(output.PageStatus(state)) + "\n")
		b.WriteString(dimStyle.Render("press r to retry") + "\n")
	case pagination.StatusReady:
		for _, item := range state.Items {
			b.WriteString(itemTitleStyle.Render(item.Title) + "\n")
			meta := fmt.Sprintf("%s · %s", item.CreatorName, item.DateDisplay)
			if item.Department != "" {
				meta += " · " + item.Department
			}
			b.WriteString(itemMetaStyle.Render(meta) + "\n")
		}
	}

	if state.Status != pagination.StatusIdle {
		b.WriteString(statusStyle.Render(m.pager(state)) + "\n")
	}
	return b.String()
}

// pager renders the page line with disabled navigation dimmed.
func (m Model) pager(state pagination.FetchState) string {
	prev, next := "← prev", "next →"
	if !state.HasPrevious() {
		prev = dimStyle.Render(prev)
	}
	if !state.HasNext() {
		next = dimStyle.Render(next)
	}

	status := output.PageStatus(state)
	if state.Status != pagination.StatusReady {
		if state.TotalPages == 0 {
			return prev + "  " + next
		}
		status = fmt.Sprintf("Page %d of %d", state.Page, state.TotalPages)
	}
	return prev + "  " + status + "  " + next
}
