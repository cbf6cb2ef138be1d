// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"strings"
	"time"

	"talkora/internal/models"
	"talkora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterUser handles POST /api/users. Social sign-in providers call this on
// every first session, so re-registering an existing email is a success.
func (s *Server) RegisterUser(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Image string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, existing, err := s.userService.RegisterUser(c.UserContext(), service.RegisterUserInput{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusCreated
	if existing {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"user":     user,
		"existing": existing,
	})
}

// UpdateLastLogin handles PATCH /api/users/:email
func (s *Server) UpdateLastLogin(c *fiber.Ctx) error {
	email := strings.ToLower(c.Params("email"))
	if email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing email"))
	}

	var req struct {
		LastLoginAt time.Time `json:"lastLoginAt"`
	}
	// Body is optional; an empty body stamps "now".
	_ = c.BodyParser(&req)

	if err := s.userService.TouchLastLogin(c.UserContext(), email, req.LastLoginAt); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"updated": true})
}

// GetUserRole handles GET /api/users/role/:email
func (s *Server) GetUserRole(c *fiber.Ctx) error {
	email := strings.ToLower(c.Params("email"))
	if email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing email"))
	}

	role, err := s.userService.GetRole(c.UserContext(), email)
	if err != nil && !models.IsNotFound(err) {
		return respondError(c, err)
	}

	// Unknown users read as plain users so the frontend can render a
	// default chrome before registration completes.
	return c.JSON(fiber.Map{"role": role})
}

// GetMyProfile handles GET /api/users/profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.UserContext(), callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// GetAllUsers handles GET /api/users (admin)
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page := parsePagination(c, defaultAdminLimit)

	users, total, err := s.userService.ListUsers(c.UserContext(), c.Query("search"), page.Page, page.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": total,
	})
}

// UpdateUserRole handles PATCH /api/users/role/:id (admin)
func (s *Server) UpdateUserRole(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.UpdateRole(c.UserContext(), id, req.Role); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"updated": true})
}

// GrantMembership handles PATCH /api/users/membership/:email. Only the member
// themselves (post-payment) or an admin may flip the badge.
func (s *Server) GrantMembership(c *fiber.Ctx) error {
	email := strings.ToLower(c.Params("email"))
	if email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing email"))
	}

	if email != callerEmail(c) {
		admin, adminErr := s.userService.IsAdmin(c.UserContext(), callerEmail(c))
		if adminErr != nil && !models.IsNotFound(adminErr) {
			return respondError(c, adminErr)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Cannot change another user's membership"))
		}
	}

	if err := s.userService.GrantMembership(c.UserContext(), email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"badge":    models.BadgeGold,
		"isMember": true,
	})
}
