// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a community post with its running vote tally.
type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	AuthorEmail string `gorm:"not null;index" json:"author_email"`
	// Upvotes and Downvotes are running counters maintained exclusively by
	// the vote reconciler; they are never recomputed from the votes table.
	Upvotes   int       `gorm:"not null;default:0" json:"upvote"`
	Downvotes int       `gorm:"not null;default:0" json:"downvote"`
	Visible   bool      `gorm:"not null;default:true" json:"visible"`
	Tags      []PostTag `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	// TagNames is the flattened, ordered tag list exposed over the API.
	TagNames []string `gorm:"-" json:"tags"`
	// CommentCount is not persisted; computed at query time
	CommentCount int       `gorm:"->" json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// PostTag is one entry of a post's ordered tag sequence. Duplicates within a
// post are permitted; lowercase normalization happens at creation time.
type PostTag struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PostID   uint   `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null" json:"-"`
	Name     string `gorm:"not null;index" json:"name"`
}

// FlattenTags fills TagNames from the loaded Tags association.
func (p *Post) FlattenTags() {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	p.TagNames = names
}

// VoteDifference is the derived popularity rank key. It is never stored.
func (p *Post) VoteDifference() int {
	return p.Upvotes - p.Downvotes
}
