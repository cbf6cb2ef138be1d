// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"talkora/internal/models"
	"talkora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPublicAnnouncements handles GET /api/public-announcements
func (s *Server) GetPublicAnnouncements(c *fiber.Ctx) error {
	announcements, err := s.announcementService.PublicAnnouncements(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(announcements)
}

// GetAnnouncements handles GET /api/announcements (admin, paginated)
func (s *Server) GetAnnouncements(c *fiber.Ctx) error {
	page := parsePagination(c, defaultAdminLimit)

	announcements, total, err := s.announcementService.ListAnnouncements(c.UserContext(), page.Page, page.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"announcements": announcements,
		"total":         total,
	})
}

// CreateAnnouncement handles POST /api/announcements (admin)
func (s *Server) CreateAnnouncement(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		AuthorName  string `json:"authorName"`
		AuthorImage string `json:"authorImage"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	announcement, err := s.announcementService.CreateAnnouncement(c.UserContext(), service.CreateAnnouncementInput{
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
		AuthorImage: req.AuthorImage,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(announcement)
}

// DeleteAnnouncement handles DELETE /api/announcements/:id (admin)
func (s *Server) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.announcementService.DeleteAnnouncement(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
