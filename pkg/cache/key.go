package cache

import (
	"strings"
)

// Key identifies one cached id list: the backend it came from and the query
// that produced it.
type Key struct {
	// Backend is the museum backend name (e.g. "met").
	Backend string

	// Query is the search term exactly as issued.
	Query string
}

// String generates a deterministic cache key string.
// Format: museum:<backend>:idlist:<normalized query>
//
// Example:
//
//	museum:met:idlist:asian art
func (k Key) String() string {
	backend := strings.ToLower(strings.TrimSpace(k.Backend))
	if backend == "" {
		backend = "default"
	}
	return strings.Join([]string{"museum", backend, "idlist", normalizeQuery(k.Query)}, ":")
}

// normalizeQuery lowercases and collapses whitespace so "Asian  Art" and
// "asian art" share an entry.
func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
