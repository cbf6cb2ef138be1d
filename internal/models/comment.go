package models

import (
	"time"
)

// Comment is a reply to a post. Comments join to posts by post ID only; the
// comment count shown on listings is always computed from this table at read
// time, never cached on the post row.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	UserEmail string    `gorm:"not null;index" json:"user_email"`
	Reported  bool      `gorm:"not null;default:false;index" json:"reported,omitempty"`
	Feedback  string    `json:"feedback,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
