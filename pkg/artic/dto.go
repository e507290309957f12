package artic

// listResponse is the body of GET /artworks.
type listResponse struct {
	Pagination paginationInfo  `json:"pagination"`
	Data       []artworkRecord `json:"data"`
}

type paginationInfo struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// artworkRecord holds the selected fields; the nullable ones are pointers.
type artworkRecord struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ArtistTitle *string `json:"artist_title"`
	ImageID     *string `json:"image_id"`
	DateDisplay *string `json:"date_display"`
}
