// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"talkora/internal/models"
	"talkora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		PostID uint   `json:"postId"`
		Text   string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		PostID:    req.PostID,
		Text:      req.Text,
		UserEmail: callerEmail(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/comments?postId=...
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID := c.QueryInt("postId", 0)
	if postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing postId"))
	}

	comments, err := s.commentService.ListComments(c.UserContext(), uint(postID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// GetSecureComments handles GET /api/secure-comments/:postId. Same payload as
// the public listing, kept as a separate authenticated route for clients that
// gate the comment pane behind a session.
func (s *Server) GetSecureComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// ReportComment handles PATCH /api/report-comment/:id
func (s *Server) ReportComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.commentService.ReportComment(c.UserContext(), id, req.Feedback); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"reported": true})
}

// IgnoreReport handles PATCH /api/ignore-report/:id (admin)
func (s *Server) IgnoreReport(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.IgnoreReport(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"reported": false})
}

// GetReportedComments handles GET /api/reported-comments (admin)
func (s *Server) GetReportedComments(c *fiber.Ctx) error {
	page := parsePagination(c, defaultAdminLimit)

	comments, total, err := s.commentService.ListReported(c.UserContext(), page.Page, page.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments": comments,
		"total":    total,
	})
}

// DeleteComment handles DELETE /api/comments/:id (admin)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
