package models

import (
	"time"
)

// Announcement is an admin-authored site notice.
type Announcement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	AuthorName  string    `gorm:"not null" json:"author_name"`
	AuthorImage string    `gorm:"not null" json:"author_image"`
	CreatedAt   time.Time `json:"created_at"`
}
