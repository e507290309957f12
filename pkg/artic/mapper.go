package artic

import "github.com/Sternrassler/museum-client/pkg/artwork"

// ImageURL builds the 843px-wide IIIF rendition URL for imageID, or returns
// the placeholder when imageID is empty.
func ImageURL(iiifBase, imageID string) string {
	if imageID == "" {
		return artwork.PlaceholderImage
	}
	return iiifBase + "/" + imageID + "/full/843,/0/default.jpg"
}

func toItem(rec artworkRecord, iiifBase string) artwork.Item {
	return artwork.Item{
		ID:          rec.ID,
		Title:       rec.Title,
		CreatorName: deref(rec.ArtistTitle),
		DateDisplay: deref(rec.DateDisplay),
		ImageURL:    ImageURL(iiifBase, deref(rec.ImageID)),
	}.Complete()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
