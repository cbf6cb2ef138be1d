// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"talkora/internal/models"
	"talkora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
// @Summary List posts
// @Description Paginated post listing with optional tag search and sort order
// @Tags posts
// @Produce json
// @Param page query int false "Zero-based page"
// @Param limit query int false "Page size (default 5)"
// @Param search query string false "Tag substring filter"
// @Param sorted query string false "newest or popular"
// @Success 200 {object} object{posts=[]models.Post,total=int}
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPostLimit)

	posts, total, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		Page:   page.Page,
		Limit:  page.Limit,
		Sort:   c.Query("sorted"),
		Search: c.Query("search"),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"total": total,
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorEmail: callerEmail(c),
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// VotePost handles PATCH /api/posts/:id/vote.
// The same endpoint casts, retracts, and switches a vote; which of the three
// happened is decided against the caller's current registry entry.
func (s *Server) VotePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		VoteType string `json:"voteType"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CastVote(c.UserContext(), postID, callerEmail(c), req.VoteType)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		PostID:         postID,
		RequesterEmail: callerEmail(c),
	}); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserPosts handles GET /api/user-posts. It lists the caller's own posts.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	page := parsePagination(c, defaultAdminLimit)

	posts, total, err := s.postService.ListUserPosts(c.UserContext(), callerEmail(c), page.Page, page.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"total": total,
	})
}

// GetMyRecentPosts handles GET /api/posts/my-recent
func (s *Server) GetMyRecentPosts(c *fiber.Ctx) error {
	posts, err := s.postService.RecentPosts(c.UserContext(), callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// GetPostsInfo handles GET /api/users/posts-info
func (s *Server) GetPostsInfo(c *fiber.Ctx) error {
	info, err := s.postService.GetPostsInfo(c.UserContext(), callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(info)
}
