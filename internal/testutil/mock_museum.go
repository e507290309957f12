// Package testutil provides testing utilities for the museum clients.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MockResponse overrides the response for one path.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MetObject is the object shape served under /met/objects/{id}.
type MetObject struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	PrimaryImage      string `json:"primaryImage"`
	Department        string `json:"department"`
}

// ArticArtwork is the record shape served under /artic/artworks.
type ArticArtwork struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ArtistTitle *string `json:"artist_title"`
	ImageID     *string `json:"image_id"`
	DateDisplay *string `json:"date_display"`
}

// MockMuseum is an httptest server speaking both the Met collection API
// (under /met) and the AIC API (under /artic).
type MockMuseum struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	searches   map[string][]int
	objects    map[int]MetObject
	objectFail map[int]int
	artworks   []ArticArtwork
	delay      time.Duration

	requestCount int
	pathCounts   map[string]int
	lastHeader   http.Header
	lastQuery    map[string]string
}

// NewMockMuseum starts a mock server with no data.
func NewMockMuseum() *MockMuseum {
	m := &MockMuseum{
		handlers:   make(map[string]func(w http.ResponseWriter, r *http.Request)),
		searches:   make(map[string][]int),
		objects:    make(map[int]MetObject),
		objectFail: make(map[int]int),
		pathCounts: make(map[string]int),
		lastQuery:  make(map[string]string),
	}

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requestCount++
		m.pathCounts[r.URL.Path]++
		m.lastHeader = r.Header.Clone()
		m.lastQuery[r.URL.Path] = r.URL.RawQuery
		handler, custom := m.handlers[r.URL.Path]
		delay := m.delay
		m.mu.Unlock()

		if custom {
			handler(w, r)
			return
		}
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		m.route(w, r)
	}))

	return m
}

// URL returns the server root.
func (m *MockMuseum) URL() string {
	return m.server.URL
}

// MetURL returns the base URL of the mock Met API.
func (m *MockMuseum) MetURL() string {
	return m.server.URL + "/met"
}

// ArticURL returns the base URL of the mock AIC API.
func (m *MockMuseum) ArticURL() string {
	return m.server.URL + "/artic"
}

// Close shuts down the mock server.
func (m *MockMuseum) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockMuseum) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.pathCounts = make(map[string]int)
	m.lastHeader = nil
	m.lastQuery = make(map[string]string)
}

// SetHandler sets a custom handler for a specific path.
func (m *MockMuseum) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a fixed response for a path.
func (m *MockMuseum) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetDelay adds latency to every routed (non-custom) response.
func (m *MockMuseum) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// AddMetObjects registers objects and makes query search to their ids in order.
func (m *MockMuseum) AddMetObjects(query string, objects ...MetObject) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(objects))
	for _, obj := range objects {
		m.objects[obj.ObjectID] = obj
		ids = append(ids, obj.ObjectID)
	}
	m.searches[query] = append(m.searches[query], ids...)
}

// SeedMet registers n generated objects for query with ids start..start+n-1.
func (m *MockMuseum) SeedMet(query string, start, n int) {
	objects := make([]MetObject, n)
	for i := range objects {
		id := start + i
		objects[i] = MetObject{
			ObjectID:          id,
			Title:             fmt.Sprintf("Object %d", id),
			ArtistDisplayName: fmt.Sprintf("Artist %d", id),
			ObjectDate:        "1890",
			PrimaryImage:      fmt.Sprintf("https://images.example/%d.jpg", id),
			Department:        query,
		}
	}
	m.AddMetObjects(query, objects...)
}

// FailMetObject makes /met/objects/{id} answer with status.
func (m *MockMuseum) FailMetObject(id, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objectFail[id] = status
}

// SetArtworks replaces the AIC collection.
func (m *MockMuseum) SetArtworks(artworks ...ArticArtwork) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artworks = append([]ArticArtwork(nil), artworks...)
}

// SeedArtic fills the AIC collection with n generated artworks.
func (m *MockMuseum) SeedArtic(n int) {
	artworks := make([]ArticArtwork, n)
	for i := range artworks {
		artist := fmt.Sprintf("Painter %d", i+1)
		image := fmt.Sprintf("img-%d", i+1)
		artworks[i] = ArticArtwork{ID: i + 1, Title: fmt.Sprintf("Artwork %d", i+1), ArtistTitle: &artist, ImageID: &image}
	}
	m.SetArtworks(artworks...)
}

// RequestCount returns the number of requests made to the server.
func (m *MockMuseum) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// PathCount returns the number of requests made to path.
func (m *MockMuseum) PathCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pathCounts[path]
}

// SearchCount returns the number of Met search calls.
func (m *MockMuseum) SearchCount() int {
	return m.PathCount("/met/search")
}

// LastHeader returns the headers of the most recent request.
func (m *MockMuseum) LastHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastHeader
}

// LastQuery returns the raw query string of the most recent request to path.
func (m *MockMuseum) LastQuery(path string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastQuery[path]
}

func (m *MockMuseum) route(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/met/search":
		m.metSearch(w, r)
	case strings.HasPrefix(path, "/met/objects/"):
		m.metObject(w, strings.TrimPrefix(path, "/met/objects/"))
	case path == "/artic/artworks":
		m.articArtworks(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func (m *MockMuseum) metSearch(w http.ResponseWriter, r *http.Request) {
	m.mu.RLock()
	ids, ok := m.searches[r.URL.Query().Get("q")]
	m.mu.RUnlock()

	// The real API answers an empty search with objectIDs: null.
	if !ok || len(ids) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"total": 0, "objectIDs": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": len(ids), "objectIDs": ids})
}

func (m *MockMuseum) metObject(w http.ResponseWriter, raw string) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid id"})
		return
	}

	m.mu.RLock()
	status, failing := m.objectFail[id]
	obj, ok := m.objects[id]
	m.mu.RUnlock()

	switch {
	case failing:
		writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
	case !ok:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "ObjectID not found"})
	default:
		writeJSON(w, http.StatusOK, obj)
	}
}

func (m *MockMuseum) articArtworks(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	m.mu.RLock()
	all := m.artworks
	m.mu.RUnlock()

	lo := min((page-1)*limit, len(all))
	hi := min(lo+limit, len(all))
	data := all[lo:hi]
	if data == nil {
		data = []ArticArtwork{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pagination": map[string]any{
			"total":        len(all),
			"limit":        limit,
			"current_page": page,
		},
		"data": data,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
