package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talkora/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	posts := new(MockPostRepository)
	comments := new(MockCommentRepository)
	s := newTestServer(posts, new(MockVoteRepository), new(MockUserRepository), comments)

	app := fiber.New()
	app.Use(asUser("reader@example.com"))
	app.Post("/comments", s.CreateComment)

	t.Run("Success", func(t *testing.T) {
		posts.On("GetByID", mock.Anything, uint(5)).
			Return(&models.Post{ID: 5}, nil).Once()
		comments.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.PostID == 5 && c.UserEmail == "reader@example.com"
		})).Return(nil).Once()

		body, _ := json.Marshal(map[string]any{"postId": 5, "text": "nice"})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		comments.AssertExpectations(t)
	})

	t.Run("Unknown Post", func(t *testing.T) {
		posts.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("Post not found")).Once()

		body, _ := json.Marshal(map[string]any{"postId": 99, "text": "nice"})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Blank Text", func(t *testing.T) {
		body, _ := json.Marshal(map[string]any{"postId": 5, "text": "   "})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetComments_RequiresPostID(t *testing.T) {
	s := newTestServer(new(MockPostRepository), new(MockVoteRepository), new(MockUserRepository), new(MockCommentRepository))

	app := fiber.New()
	app.Get("/comments", s.GetComments)

	req := httptest.NewRequest(http.MethodGet, "/comments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportComment(t *testing.T) {
	comments := new(MockCommentRepository)
	s := newTestServer(new(MockPostRepository), new(MockVoteRepository), new(MockUserRepository), comments)

	app := fiber.New()
	app.Use(asUser("reader@example.com"))
	app.Patch("/report-comment/:id", s.ReportComment)

	comments.On("Report", mock.Anything, uint(8), "spam").Return(nil)

	body, _ := json.Marshal(map[string]string{"feedback": "spam"})
	req := httptest.NewRequest(http.MethodPatch, "/report-comment/8", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	comments.AssertExpectations(t)
}

func TestGetReportedComments(t *testing.T) {
	comments := new(MockCommentRepository)
	s := newTestServer(new(MockPostRepository), new(MockVoteRepository), new(MockUserRepository), comments)

	app := fiber.New()
	app.Get("/reported-comments", s.GetReportedComments)

	comments.On("ListReported", mock.Anything, 0, 10).
		Return([]*models.Comment{{ID: 1, Reported: true, Feedback: "spam"}}, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/reported-comments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Comments []models.Comment `json:"comments"`
		Total    int64            `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Comments, 1)
	assert.True(t, body.Comments[0].Reported)
	assert.EqualValues(t, 1, body.Total)
}

// TestAdminRequired verifies the admin gate on top of the auth locals.
func TestAdminRequired(t *testing.T) {
	users := new(MockUserRepository)
	s := newTestServer(new(MockPostRepository), new(MockVoteRepository), users, new(MockCommentRepository))

	app := fiber.New()
	app.Use(asUser("caller@example.com"))
	app.Get("/admin-only", s.AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	t.Run("Admin Passes", func(t *testing.T) {
		users.On("GetByEmail", mock.Anything, "caller@example.com").
			Return(&models.User{Email: "caller@example.com", Role: models.RoleAdmin}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Plain User Rejected", func(t *testing.T) {
		users.On("GetByEmail", mock.Anything, "caller@example.com").
			Return(&models.User{Email: "caller@example.com", Role: models.RoleUser}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Unknown User Rejected", func(t *testing.T) {
		users.On("GetByEmail", mock.Anything, "caller@example.com").
			Return(nil, models.NewNotFoundError("User not found")).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
