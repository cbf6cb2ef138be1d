package repository

import (
	"context"
	"time"

	"talkora/internal/cache"
	"talkora/internal/models"

	"gorm.io/gorm"
)

// popularSearchLimit bounds the leaderboard to its three hottest entries.
const popularSearchLimit = 3

// SearchRepository tracks search phrases and their popularity.
type SearchRepository interface {
	Record(ctx context.Context, text string) error
	Popular(ctx context.Context) ([]*models.Search, error)
}

type searchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// Record upserts the phrase: a first sighting lands with votes=1, every
// repeat bumps the counter. created_at keeps its original value so ties
// break toward the older entry consistently.
func (r *searchRepository) Record(ctx context.Context, text string) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO searches (text, votes, created_at)
		 VALUES (?, 1, ?)
		 ON CONFLICT (text) DO UPDATE SET votes = searches.votes + 1`,
		text, time.Now(),
	).Error
	if err == nil {
		cache.Invalidate(ctx, cache.PopularSearchesKey)
	}
	return err
}

func (r *searchRepository) Popular(ctx context.Context) ([]*models.Search, error) {
	var searches []*models.Search
	err := cache.CacheAside(ctx, cache.PopularSearchesKey, &searches, cache.PopularSearchesTTL, func() error {
		return r.db.WithContext(ctx).
			Order("votes DESC, created_at DESC").
			Limit(popularSearchLimit).
			Find(&searches).Error
	})
	return searches, err
}
