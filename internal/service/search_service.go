package service

import (
	"context"
	"strings"

	"talkora/internal/models"
	"talkora/internal/repository"
)

type SearchService struct {
	searchRepo repository.SearchRepository
}

func NewSearchService(searchRepo repository.SearchRepository) *SearchService {
	return &SearchService{searchRepo: searchRepo}
}

func (s *SearchService) RecordSearch(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return models.NewValidationError("Missing search text")
	}
	return s.searchRepo.Record(ctx, text)
}

func (s *SearchService) PopularSearches(ctx context.Context) ([]*models.Search, error) {
	return s.searchRepo.Popular(ctx)
}
