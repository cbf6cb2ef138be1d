package service

import (
	"context"

	"talkora/internal/repository"
)

// AdminService aggregates site-wide statistics for the admin dashboard.
type AdminService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

// Overview holds the headline counts shown on the admin dashboard.
type Overview struct {
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
	Users    int64 `json:"users"`
}

func NewAdminService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *AdminService {
	return &AdminService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func (s *AdminService) GetOverview(ctx context.Context) (*Overview, error) {
	posts, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{Posts: posts, Comments: comments, Users: users}, nil
}
