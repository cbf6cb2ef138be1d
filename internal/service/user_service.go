package service

import (
	"context"
	"strings"
	"time"

	"talkora/internal/models"
	"talkora/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterUserInput struct {
	Name  string
	Email string
	Image string
	Role  string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser records a user on first sign-in. Registering an email that
// already exists is not an error: the caller learns it via the second return.
func (s *UserService) RegisterUser(ctx context.Context, in RegisterUserInput) (*models.User, bool, error) {
	if in.Email == "" || in.Name == "" || in.Image == "" {
		return nil, false, models.NewValidationError("Name, email, and photo are required")
	}

	email := strings.ToLower(in.Email)
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return existing, true, nil
	} else if !models.IsNotFound(err) {
		return nil, false, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	now := time.Now()
	user := &models.User{
		Name:        in.Name,
		Email:       email,
		Image:       in.Image,
		Role:        role,
		Badge:       models.BadgeBronze,
		LastLoginAt: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if models.IsConflict(err) {
			// Lost a race with a concurrent first sign-in; treat as existing.
			existing, getErr := s.userRepo.GetByEmail(ctx, email)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, true, nil
		}
		return nil, false, err
	}
	return user, false, nil
}

func (s *UserService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *UserService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if models.IsNotFound(err) {
			return models.RoleUser, err
		}
		return "", err
	}
	if user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// IsGoldMember reports whether the user holds the gold badge.
func (s *UserService) IsGoldMember(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.Badge == models.BadgeGold, nil
}

func (s *UserService) TouchLastLogin(ctx context.Context, email string, at time.Time) error {
	if at.IsZero() {
		at = time.Now()
	}
	return s.userRepo.UpdateLastLogin(ctx, email, at)
}

func (s *UserService) GrantMembership(ctx context.Context, email string) error {
	return s.userRepo.GrantMembership(ctx, email)
}

func (s *UserService) ListUsers(ctx context.Context, search string, page, limit int) ([]*models.User, int64, error) {
	return s.userRepo.List(ctx, search, page, limit)
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, role string) error {
	switch role {
	case models.RoleUser, models.RoleAdmin:
	default:
		return models.NewValidationError("Invalid role")
	}
	return s.userRepo.UpdateRole(ctx, id, role)
}
