package service

import (
	"context"
	"strings"

	"talkora/internal/models"
	"talkora/internal/repository"
)

type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, models.NewValidationError("Tag name is required")
	}
	return s.tagRepo.Create(ctx, name)
}

func (s *TagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.tagRepo.List(ctx)
}

// TagsWithCounts returns registered tags used by at least one post.
func (s *TagService) TagsWithCounts(ctx context.Context) ([]models.TagCount, error) {
	return s.tagRepo.WithCounts(ctx)
}
