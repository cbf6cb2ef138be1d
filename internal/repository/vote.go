package repository

import (
	"context"
	"time"

	"talkora/internal/cache"
	"talkora/internal/models"

	"gorm.io/gorm"
)

// VoteRepository reconciles a caller's vote against a post's voter registry
// and running counters.
type VoteRepository interface {
	Cast(ctx context.Context, postID uint, voterEmail string, direction models.VoteDirection) (models.VoteOutcome, error)
	CountVoters(ctx context.Context, postID uint) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Cast applies a single vote request inside one transaction. Every counter
// mutation is guarded by a registry mutation that reports RowsAffected, so two
// racing requests for the same (post, voter) pair can never both update the
// counters: the loser's guard matches zero rows and the transaction surfaces
// a conflict instead of double-counting.
func (r *voteRepository) Cast(ctx context.Context, postID uint, voterEmail string, direction models.VoteDirection) (models.VoteOutcome, error) {
	var outcome models.VoteOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return models.NewNotFoundError("Post not found")
		}

		// First vote: the unique index on (post_id, voter_email) turns a
		// concurrent duplicate into a no-op insert.
		ins := tx.Exec(
			`INSERT INTO votes (post_id, voter_email, direction, created_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (post_id, voter_email) DO NOTHING`,
			postID, voterEmail, direction, time.Now(),
		)
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 1 {
			outcome = models.OutcomeCast
			return r.adjustCounter(tx, postID, direction, +1)
		}

		var existing models.Vote
		if err := tx.Where("post_id = ? AND voter_email = ?", postID, voterEmail).
			First(&existing).Error; err != nil {
			return err
		}

		if existing.Direction == direction {
			// Same direction again: retract.
			del := tx.Exec(
				`DELETE FROM votes WHERE post_id = ? AND voter_email = ? AND direction = ?`,
				postID, voterEmail, direction,
			)
			if del.Error != nil {
				return del.Error
			}
			if del.RowsAffected == 0 {
				return models.NewConflictError("Vote changed concurrently, retry")
			}
			outcome = models.OutcomeRetracted
			return r.adjustCounter(tx, postID, direction, -1)
		}

		// Opposite direction: flip the registry row, then move one unit
		// between the counters in a single statement.
		upd := tx.Exec(
			`UPDATE votes SET direction = ? WHERE post_id = ? AND voter_email = ? AND direction = ?`,
			direction, postID, voterEmail, existing.Direction,
		)
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return models.NewConflictError("Vote changed concurrently, retry")
		}
		outcome = models.OutcomeSwitched
		return r.switchCounters(tx, postID, existing.Direction, direction)
	})
	if err != nil {
		return "", err
	}

	cache.InvalidatePost(ctx, postID)
	return outcome, nil
}

func (r *voteRepository) CountVoters(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *voteRepository) adjustCounter(tx *gorm.DB, postID uint, direction models.VoteDirection, delta int) error {
	col := counterColumn(direction)
	return tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn(col, gorm.Expr(col+" + ?", delta)).Error
}

func (r *voteRepository) switchCounters(tx *gorm.DB, postID uint, from, to models.VoteDirection) error {
	fromCol := counterColumn(from)
	toCol := counterColumn(to)
	return tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumns(map[string]interface{}{
			fromCol: gorm.Expr(fromCol + " - 1"),
			toCol:   gorm.Expr(toCol + " + 1"),
		}).Error
}

func counterColumn(direction models.VoteDirection) string {
	if direction == models.VoteDown {
		return "downvotes"
	}
	return "upvotes"
}
