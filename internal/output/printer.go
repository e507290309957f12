// Package output renders artview results: page tables, status lines and
// JSON for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Sternrassler/museum-client/pkg/pagination"
	"github.com/fatih/color"
)

// Printer writes formatted output to the terminal.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer on stdout/stderr.
func NewPrinter(useColors bool) *Printer {
	return NewPrinterTo(os.Stdout, os.Stderr, useColors)
}

// NewPrinterTo creates a printer with explicit writers.
func NewPrinterTo(out, errOut io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errOut, useColors: ResolveColors(useColors)}
}

// ResolveColors honours NO_COLOR and dumb terminals.
func ResolveColors(configColors bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return configColors
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error prints an error message.
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// Header prints a section header.
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", title)
}

// PageStatus renders the "Page X of Y" line of a state.
func PageStatus(state pagination.FetchState) string {
	switch state.Status {
	case pagination.StatusIdle:
		return "No page loaded"
	case pagination.StatusLoading:
		return fmt.Sprintf("Loading page %d...", state.Page)
	case pagination.StatusFailed:
		return "Error: " + state.Message()
	}
	if state.TotalPages == 0 {
		return "No artworks found"
	}
	return fmt.Sprintf("Page %d of %d", state.Page, state.TotalPages)
}

// PrintState writes the items of a ready state as a table followed by the
// page status. A failed state is written to stderr and yields its error.
func (p *Printer) PrintState(title string, state pagination.FetchState) error {
	if state.Status == pagination.StatusFailed {
		p.Error("%s", PageStatus(state))
		return state.Err
	}

	if title != "" {
		p.Header(title)
	}

	if len(state.Items) > 0 {
		table := NewTableWithWriter(p.out, []string{"ID", "Title", "Artist", "Date", "Image"})
		for _, item := range state.Items {
			image := "-"
			if item.HasImage() {
				image = item.ImageURL
			}
			table.AddRow([]string{fmt.Sprint(item.ID), item.Title, item.CreatorName, item.DateDisplay, image})
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	status := PageStatus(state)
	if p.useColors {
		nav := ""
		if state.HasPrevious() {
			nav += " ← prev"
		}
		if state.HasNext() {
			nav += " → next"
		}
		fmt.Fprintf(p.out, "\n%s%s\n", color.New(color.Bold).Sprint(status), color.New(color.Faint).Sprint(nav))
		return nil
	}
	fmt.Fprintf(p.out, "\n%s\n", status)
	return nil
}

// PrintList writes one name per line.
func (p *Printer) PrintList(names []string) {
	for _, name := range names {
		fmt.Fprintln(p.out, name)
	}
}

// pageJSON is the --json shape of a page.
type pageJSON struct {
	Backend     string `json:"backend"`
	Query       string `json:"query,omitempty"`
	Page        int    `json:"page"`
	TotalPages  int    `json:"totalPages"`
	TotalItems  int    `json:"totalItems"`
	HasPrevious bool   `json:"hasPrevious"`
	HasNext     bool   `json:"hasNext"`
	Items       any    `json:"items"`
	Error       string `json:"error,omitempty"`
}

// PrintJSON writes state as indented JSON. A failed state still yields its error.
func (p *Printer) PrintJSON(backend string, state pagination.FetchState) error {
	doc := pageJSON{
		Backend:     backend,
		Query:       state.Query,
		Page:        state.Page,
		TotalPages:  state.TotalPages,
		TotalItems:  state.TotalItems,
		HasPrevious: state.HasPrevious(),
		HasNext:     state.HasNext(),
		Items:       state.Items,
		Error:       state.Message(),
	}
	if state.Items == nil {
		doc.Items = []any{}
	}

	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if state.Status == pagination.StatusFailed {
		return state.Err
	}
	return nil
}
