package artic

import (
	"testing"

	"github.com/Sternrassler/museum-client/pkg/artwork"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestImageURL(t *testing.T) {
	assert.Equal(t,
		"https://www.artic.edu/iiif/2/abc-123/full/843,/0/default.jpg",
		ImageURL(DefaultIIIFBase, "abc-123"))
	assert.Equal(t, artwork.PlaceholderImage, ImageURL(DefaultIIIFBase, ""))
}

func TestToItem(t *testing.T) {
	tests := []struct {
		name string
		rec  artworkRecord
		want artwork.Item
	}{
		{
			name: "complete record",
			rec:  artworkRecord{ID: 27992, Title: "A Sunday on La Grande Jatte", ArtistTitle: strPtr("Georges Seurat"), ImageID: strPtr("2d484387"), DateDisplay: strPtr("1884-86")},
			want: artwork.Item{
				ID:          27992,
				Title:       "A Sunday on La Grande Jatte",
				CreatorName: "Georges Seurat",
				DateDisplay: "1884-86",
				ImageURL:    DefaultIIIFBase + "/2d484387/full/843,/0/default.jpg",
			},
		},
		{
			name: "null fields",
			rec:  artworkRecord{ID: 5, Title: "Fragment"},
			want: artwork.Item{ID: 5, Title: "Fragment", CreatorName: artwork.UnknownArtist, DateDisplay: artwork.UnknownDate, ImageURL: artwork.PlaceholderImage},
		},
		{
			name: "empty image id",
			rec:  artworkRecord{ID: 6, Title: "Study", ImageID: strPtr("")},
			want: artwork.Item{ID: 6, Title: "Study", CreatorName: artwork.UnknownArtist, DateDisplay: artwork.UnknownDate, ImageURL: artwork.PlaceholderImage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toItem(tt.rec, DefaultIIIFBase))
		})
	}
}
