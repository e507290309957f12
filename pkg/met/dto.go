package met

// searchResponse is the body of GET /search. objectIDs is null when nothing matches.
type searchResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// objectResponse is the subset of GET /objects/{id} the explorer uses.
type objectResponse struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	PrimaryImage      string `json:"primaryImage"`
	Department        string `json:"department"`
}
