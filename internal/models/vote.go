package models

import (
	"time"
)

// VoteDirection is the typed vote direction. The wire values match the
// "upvote"/"downvote" strings clients send; anything else is rejected before
// any storage mutation.
type VoteDirection string

const (
	VoteUp   VoteDirection = "upvote"
	VoteDown VoteDirection = "downvote"
)

// ParseVoteDirection validates a client-supplied direction string.
func ParseVoteDirection(s string) (VoteDirection, error) {
	switch VoteDirection(s) {
	case VoteUp:
		return VoteUp, nil
	case VoteDown:
		return VoteDown, nil
	default:
		return "", NewValidationError("Invalid vote type")
	}
}

// VoteOutcome describes what a reconciled vote actually did.
type VoteOutcome string

const (
	// OutcomeCast means a new vote row was inserted and a counter incremented.
	OutcomeCast VoteOutcome = "cast"
	// OutcomeRetracted means the caller's prior vote in the same direction was removed.
	OutcomeRetracted VoteOutcome = "retracted"
	// OutcomeSwitched means the caller's vote flipped direction.
	OutcomeSwitched VoteOutcome = "switched"
)

// Vote is one entry in a post's voter registry. The unique index on
// (post_id, voter_email) is what enforces at most one active vote per user
// per post at the storage layer.
type Vote struct {
	ID         uint          `gorm:"primaryKey" json:"-"`
	PostID     uint          `gorm:"not null;uniqueIndex:idx_votes_post_voter" json:"post_id"`
	VoterEmail string        `gorm:"not null;uniqueIndex:idx_votes_post_voter" json:"email"`
	Direction  VoteDirection `gorm:"not null;size:16" json:"direction"`
	CreatedAt  time.Time     `json:"-"`
}
