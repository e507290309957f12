// Package artwork defines the hydrated artwork record shared by every museum
// backend and the data-completion rules applied before display.
package artwork

import "strings"

// Display sentinels for fields a museum record may omit.
const (
	UnknownArtist = "Artist Unknown"
	UnknownDate   = "Date Unknown"
	Untitled      = "Untitled"

	// PlaceholderImage is the image reference used when a record has no image.
	PlaceholderImage = "/api/placeholder/300/400"
)

// Item is a hydrated artwork record.
type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	CreatorName string `json:"creator_name,omitempty"`
	DateDisplay string `json:"date_display,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Department  string `json:"department,omitempty"`
}

// Complete returns a copy of the item with missing display fields replaced by
// their sentinels. Missing data is never an error.
func (it Item) Complete() Item {
	it.Title = orDefault(it.Title, Untitled)
	it.CreatorName = orDefault(it.CreatorName, UnknownArtist)
	it.DateDisplay = orDefault(it.DateDisplay, UnknownDate)
	it.ImageURL = orDefault(it.ImageURL, PlaceholderImage)
	return it
}

// HasImage reports whether the item points at a real image rather than the placeholder.
func (it Item) HasImage() bool {
	return it.ImageURL != "" && it.ImageURL != PlaceholderImage
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
