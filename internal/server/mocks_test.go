package server

import (
	"context"
	"time"

	"talkora/internal/models"
	"talkora/internal/repository"
	"talkora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, filter repository.ListPostsFilter) ([]*models.Post, int64, error) {
	args := m.Called(ctx, filter)
	var posts []*models.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]*models.Post)
	}
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorEmail string, page, limit int) ([]*models.Post, int64, error) {
	args := m.Called(ctx, authorEmail, page, limit)
	var posts []*models.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]*models.Post)
	}
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) RecentByAuthor(ctx context.Context, authorEmail string, n int) ([]*models.Post, error) {
	args := m.Called(ctx, authorEmail, n)
	var posts []*models.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]*models.Post)
	}
	return posts, args.Error(1)
}

func (m *MockPostRepository) CountByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	args := m.Called(ctx, authorEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVoteRepository is a mock of the VoteRepository interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Cast(ctx context.Context, postID uint, voterEmail string, direction models.VoteDirection) (models.VoteOutcome, error) {
	args := m.Called(ctx, postID, voterEmail, direction)
	return args.Get(0).(models.VoteOutcome), args.Error(1)
}

func (m *MockVoteRepository) CountVoters(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, search string, page, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, search, page, limit)
	var users []*models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]*models.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uint, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	args := m.Called(ctx, email, at)
	return args.Error(0)
}

func (m *MockUserRepository) GrantMembership(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	var comments []*models.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]*models.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) Report(ctx context.Context, id uint, feedback string) error {
	args := m.Called(ctx, id, feedback)
	return args.Error(0)
}

func (m *MockCommentRepository) IgnoreReport(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListReported(ctx context.Context, page, limit int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, page, limit)
	var comments []*models.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]*models.Comment)
	}
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// newTestServer wires a Server over the given mocks the same way
// NewServerWithDeps does, without touching a database or Redis.
func newTestServer(posts *MockPostRepository, votes *MockVoteRepository, users *MockUserRepository, comments *MockCommentRepository) *Server {
	s := &Server{
		postRepo:    posts,
		voteRepo:    votes,
		userRepo:    users,
		commentRepo: comments,
	}
	s.userService = service.NewUserService(users)
	s.postService = service.NewPostService(posts, votes, s.userService.IsAdmin, s.userService.IsGoldMember)
	s.commentService = service.NewCommentService(comments, posts)
	return s
}

// asUser injects the authenticated identity the way AuthRequired would.
func asUser(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		c.Locals("email", email)
		return c.Next()
	}
}
