package repository

import (
	"context"
	"errors"

	"talkora/internal/cache"
	"talkora/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// TagRepository defines the interface for tag registry operations
type TagRepository interface {
	Create(ctx context.Context, name string) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
	WithCounts(ctx context.Context) ([]models.TagCount, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, models.NewConflictError("Tag already exists")
		}
		return nil, err
	}
	cache.Invalidate(ctx, cache.TagCountsKey)
	return tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

// WithCounts returns every registered tag that appears on at least one post,
// with its usage count. The inner join drops zero-count tags.
func (r *tagRepository) WithCounts(ctx context.Context) ([]models.TagCount, error) {
	var counts []models.TagCount
	err := cache.CacheAside(ctx, cache.TagCountsKey, &counts, cache.TagCountsTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Tag{}).
			Select("tags.name, COUNT(post_tags.id) as count").
			Joins("JOIN post_tags ON post_tags.name = tags.name").
			Group("tags.name").
			Order("count DESC, tags.name ASC").
			Find(&counts).Error
	})
	return counts, err
}

// isUniqueViolation reports whether err is a duplicate-key error from either
// the postgres driver or gorm's portable translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
