package service

import (
	"context"
	"strings"

	"talkora/internal/models"
	"talkora/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	PostID    uint
	Text      string
	UserEmail string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.PostID == 0 {
		return nil, models.NewValidationError("Invalid comment data")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Invalid comment data")
	}
	if in.UserEmail == "" {
		return nil, models.NewValidationError("Invalid comment data")
	}

	// The post must exist; comments attach by id, never by title.
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, models.NewNotFoundError("Post not found")
	}

	comment := &models.Comment{
		PostID:    in.PostID,
		Text:      in.Text,
		UserEmail: strings.ToLower(in.UserEmail),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if postID == 0 {
		return nil, models.NewValidationError("Missing postId")
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) ReportComment(ctx context.Context, id uint, feedback string) error {
	if strings.TrimSpace(feedback) == "" {
		return models.NewValidationError("Feedback is required")
	}
	return s.commentRepo.Report(ctx, id, feedback)
}

func (s *CommentService) IgnoreReport(ctx context.Context, id uint) error {
	return s.commentRepo.IgnoreReport(ctx, id)
}

func (s *CommentService) ListReported(ctx context.Context, page, limit int) ([]*models.Comment, int64, error) {
	return s.commentRepo.ListReported(ctx, page, limit)
}

func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	return s.commentRepo.Delete(ctx, id)
}
