// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetAdminOverview handles GET /api/admin/overview
func (s *Server) GetAdminOverview(c *fiber.Ctx) error {
	overview, err := s.adminService.GetOverview(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(overview)
}
