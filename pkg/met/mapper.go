package met

import "github.com/Sternrassler/museum-client/pkg/artwork"

// toItem maps an object record. The requested id wins if the body omits it.
// Only primaryImage is shown; records without one get the placeholder.
func toItem(id int, obj objectResponse) artwork.Item {
	if obj.ObjectID != 0 {
		id = obj.ObjectID
	}
	return artwork.Item{
		ID:          id,
		Title:       obj.Title,
		CreatorName: obj.ArtistDisplayName,
		DateDisplay: obj.ObjectDate,
		ImageURL:    obj.PrimaryImage,
		Department:  obj.Department,
	}.Complete()
}
