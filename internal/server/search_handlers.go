// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"talkora/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RecordSearch handles POST /api/searches. Repeated submissions of the same
// text bump its popularity instead of inserting a second row.
func (s *Server) RecordSearch(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.searchService.RecordSearch(c.UserContext(), req.Text); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"recorded": true})
}

// GetPopularSearches handles GET /api/popular-searches
func (s *Server) GetPopularSearches(c *fiber.Ctx) error {
	searches, err := s.searchService.PopularSearches(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(searches)
}
