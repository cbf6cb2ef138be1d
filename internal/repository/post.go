// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"talkora/internal/cache"
	"talkora/internal/models"

	"gorm.io/gorm"
)

// SortNewest and SortPopular are the accepted feed orderings.
const (
	SortNewest  = "newest"
	SortPopular = "popular"
)

// ListPostsFilter carries the feed query parameters down to the storage layer.
// Page is zero-based; the row offset is Page*Limit.
type ListPostsFilter struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]*models.Post, int64, error)
	ListByAuthor(ctx context.Context, authorEmail string, page, limit int) ([]*models.Post, int64, error)
	RecentByAuthor(ctx context.Context, authorEmail string, n int) ([]*models.Post, error)
	CountByAuthor(ctx context.Context, authorEmail string) (int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		post.FlattenTags()
		cache.Invalidate(ctx, cache.TagCountsKey)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.CacheAside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		if err := r.applyCommentCount(r.db.WithContext(ctx)).
			Preload("Tags", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			First(&post, id).Error; err != nil {
			return err
		}
		post.FlattenTags()
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter ListPostsFilter) ([]*models.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Post{})
	base = r.applySearch(base, filter.Search)

	// Total reflects the filter but not the page window.
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	q := r.applyCommentCount(base.Session(&gorm.Session{})).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	q = r.applySort(q, filter.Sort)
	err := q.
		Offset(filter.Page * filter.Limit).
		Limit(filter.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	for _, p := range posts {
		p.FlattenTags()
	}
	return posts, total, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorEmail string, page, limit int) ([]*models.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Post{}).Where("author_email = ?", authorEmail)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := r.applyCommentCount(base.Session(&gorm.Session{})).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	for _, p := range posts {
		p.FlattenTags()
	}
	return posts, total, nil
}

func (r *postRepository) RecentByAuthor(ctx context.Context, authorEmail string, n int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("author_email = ?", authorEmail).
		Order("created_at DESC").
		Limit(n).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.FlattenTags()
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_email = ?", authorEmail).
		Count(&count).Error
	return count, err
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err == nil {
		cache.InvalidatePost(ctx, id)
	}
	return err
}

// applyCommentCount adds the per-post comment tally as a correlated subquery
// so listing stays a single round trip.
func (r *postRepository) applyCommentCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comment_count")
}

// applySearch narrows the feed to posts carrying at least one tag that
// contains the query as a case-insensitive substring.
func (r *postRepository) applySearch(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return db.Where(
		"posts.id IN (SELECT post_id FROM post_tags WHERE LOWER(post_tags.name) LIKE ?)",
		pattern,
	)
}

// applySort appends the ORDER BY clause for the requested sort type.
func (r *postRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case SortPopular:
		return db.Order("(upvotes - downvotes) DESC, created_at DESC")
	default: // "newest" and anything unrecognized
		return db.Order("created_at DESC")
	}
}
