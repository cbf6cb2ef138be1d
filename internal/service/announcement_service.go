package service

import (
	"context"

	"talkora/internal/models"
	"talkora/internal/repository"
)

type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
}

type CreateAnnouncementInput struct {
	Title       string
	Description string
	AuthorName  string
	AuthorImage string
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, in CreateAnnouncementInput) (*models.Announcement, error) {
	if in.Title == "" || in.Description == "" || in.AuthorName == "" || in.AuthorImage == "" {
		return nil, models.NewValidationError("All fields are required")
	}
	announcement := &models.Announcement{
		Title:       in.Title,
		Description: in.Description,
		AuthorName:  in.AuthorName,
		AuthorImage: in.AuthorImage,
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) ListAnnouncements(ctx context.Context, page, limit int) ([]*models.Announcement, int64, error) {
	return s.announcementRepo.List(ctx, page, limit)
}

// PublicAnnouncements serves the unauthenticated board without pagination.
func (s *AnnouncementService) PublicAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.ListAll(ctx)
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id uint) error {
	return s.announcementRepo.Delete(ctx, id)
}
