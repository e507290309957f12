package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Sternrassler/museum-client/pkg/artwork"
	"github.com/Sternrassler/museum-client/pkg/pagination"
)

func readyState() pagination.FetchState {
	return pagination.FetchState{
		Status:     pagination.StatusReady,
		Query:      "European Paintings",
		Page:       2,
		TotalPages: 4,
		TotalItems: 37,
		Items: []artwork.Item{
			artwork.Item{ID: 436535, Title: "Wheat Field with Cypresses", CreatorName: "Vincent van Gogh", DateDisplay: "1889", ImageURL: "https://images.example/436535.jpg"}.Complete(),
			artwork.Item{ID: 1, Title: "Study"}.Complete(),
		},
	}
}

func TestPageStatus(t *testing.T) {
	tests := []struct {
		name  string
		state pagination.FetchState
		want  string
	}{
		{"idle", pagination.FetchState{}, "No page loaded"},
		{"loading", pagination.FetchState{Status: pagination.StatusLoading, Page: 3}, "Loading page 3..."},
		{"ready", readyState(), "Page 2 of 4"},
		{"empty", pagination.FetchState{Status: pagination.StatusReady, Page: 1}, "No artworks found"},
		{"failed", pagination.FetchState{Status: pagination.StatusFailed, Err: errors.New("boom")}, "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageStatus(tt.state); got != tt.want {
				t.Errorf("PageStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintState_Table(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterTo(&stdout, &stderr, false)

	if err := p.PrintState("European Paintings", readyState()); err != nil {
		t.Fatalf("PrintState() error = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"European Paintings", "Wheat Field with Cypresses", "Vincent van Gogh", artwork.UnknownArtist, "Page 2 of 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output: %q", want, out)
		}
	}
	if strings.Contains(out, artwork.PlaceholderImage) {
		t.Errorf("placeholder image should render as '-': %q", out)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestPrintState_Failed(t *testing.T) {
	var stdout, stderr bytes.Buffer
	p := NewPrinterTo(&stdout, &stderr, false)
	cause := errors.New("search failed")

	err := p.PrintState("", pagination.FetchState{Status: pagination.StatusFailed, Err: cause})
	if !errors.Is(err, cause) {
		t.Errorf("error = %v, want %v", err, cause)
	}
	if !strings.Contains(stderr.String(), "[ERROR] Error: search failed") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("failed state should not print a table: %q", stdout.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinterTo(&stdout, &bytes.Buffer{}, false)

	if err := p.PrintJSON("met", readyState()); err != nil {
		t.Fatalf("PrintJSON() error = %v", err)
	}

	var doc struct {
		Backend     string         `json:"backend"`
		Page        int            `json:"page"`
		TotalPages  int            `json:"totalPages"`
		HasPrevious bool           `json:"hasPrevious"`
		HasNext     bool           `json:"hasNext"`
		Items       []artwork.Item `json:"items"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout.String())
	}
	if doc.Backend != "met" || doc.Page != 2 || doc.TotalPages != 4 {
		t.Errorf("doc = %+v", doc)
	}
	if !doc.HasPrevious || !doc.HasNext {
		t.Errorf("navigation flags = %v/%v, want true/true", doc.HasPrevious, doc.HasNext)
	}
	if len(doc.Items) != 2 || doc.Items[0].ID != 436535 {
		t.Errorf("items = %+v", doc.Items)
	}
}

func TestPrintJSON_EmptyItems(t *testing.T) {
	var stdout bytes.Buffer
	p := NewPrinterTo(&stdout, &bytes.Buffer{}, false)

	if err := p.PrintJSON("artic", pagination.FetchState{Status: pagination.StatusReady, Page: 1}); err != nil {
		t.Fatalf("PrintJSON() error = %v", err)
	}
	if !strings.Contains(stdout.String(), `"items": []`) {
		t.Errorf("expected empty items array, got %s", stdout.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Arts of Africa, Oceania", 8); got != "Arts of…" {
		t.Errorf("truncate() = %q", got)
	}
}
