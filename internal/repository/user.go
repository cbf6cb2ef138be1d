package repository

import (
	"context"
	"strings"
	"time"

	"talkora/internal/cache"
	"talkora/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, search string, page, limit int) ([]*models.User, int64, error)
	UpdateRole(ctx context.Context, id uint, role string) error
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
	GrantMembership(ctx context.Context, email string) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("User already exists")
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, search string, page, limit int) ([]*models.User, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.User{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		base = base.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*models.User
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uint, role string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User not found")
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", strings.ToLower(email)).
		Update("last_login_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User not found")
	}
	cache.InvalidateUser(ctx, strings.ToLower(email))
	return nil
}

func (r *userRepository) GrantMembership(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", strings.ToLower(email)).
		Updates(map[string]interface{}{
			"is_member": true,
			"badge":     models.BadgeGold,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User not found")
	}
	cache.InvalidateUser(ctx, strings.ToLower(email))
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
