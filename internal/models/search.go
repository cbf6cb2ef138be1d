package models

import (
	"time"
)

// Search records how often a search term has been submitted. Votes is bumped
// on every repeated submission of the same text; CreatedAt is the first
// occurrence and is used to break ranking ties.
type Search struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"not null;uniqueIndex" json:"text"`
	Votes     int       `gorm:"not null;default:1" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
