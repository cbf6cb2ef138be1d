package repository

import (
	"context"

	"talkora/internal/cache"
	"talkora/internal/models"

	"gorm.io/gorm"
)

// AnnouncementRepository defines the interface for announcement data operations
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	List(ctx context.Context, page, limit int) ([]*models.Announcement, int64, error)
	ListAll(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id uint) error
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	err := r.db.WithContext(ctx).Create(announcement).Error
	if err == nil {
		cache.InvalidateAnnouncements(ctx)
	}
	return err
}

func (r *announcementRepository) List(ctx context.Context, page, limit int) ([]*models.Announcement, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Announcement{})

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var announcements []*models.Announcement
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&announcements).Error
	if err != nil {
		return nil, 0, err
	}
	return announcements, total, nil
}

// ListAll serves the public, unauthenticated announcement board.
func (r *announcementRepository) ListAll(ctx context.Context) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	err := cache.CacheAside(ctx, cache.AnnouncementsKey, &announcements, cache.AnnouncementsTTL, func() error {
		return r.db.WithContext(ctx).
			Order("created_at DESC").
			Find(&announcements).Error
	})
	return announcements, err
}

func (r *announcementRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Announcement not found")
	}
	cache.InvalidateAnnouncements(ctx)
	return nil
}
