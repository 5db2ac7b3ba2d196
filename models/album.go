package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Album is a catalog entry. Price is stored in cents.
type Album struct {
	gorm.Model
	AlbumName  string `gorm:"not null" json:"albumName"`
	ArtistName string `gorm:"not null" json:"artistName"`
	Price      int64  `json:"price"`
	SpotifyURL string `json:"spotifyUrl"`
	Slug       string `gorm:"uniqueIndex" json:"slug"`
}

// MakeSlug returns the canonical slug for an artist/album pair.
func MakeSlug(artistName, albumName string) string {
	return slug.Make(artistName + "-" + albumName)
}
