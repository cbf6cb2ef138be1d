// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"talkora/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTag handles POST /api/tags (admin)
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.CreateTag(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

// GetTags handles GET /api/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagService.ListTags(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tags)
}

// GetTagsWithCounts handles GET /api/tags-with-counts. Only registered tags
// that appear on at least one post are reported.
func (s *Server) GetTagsWithCounts(c *fiber.Ctx) error {
	counts, err := s.tagService.TagsWithCounts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(counts)
}
