package models

import "gorm.io/gorm"

// Review is a user's rating of an album. A user may review a given album
// only once, enforced by the composite unique index.
type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_review_user_album" json:"userId"`
	AlbumID uint   `gorm:"not null;uniqueIndex:idx_review_user_album" json:"albumId"`
}
