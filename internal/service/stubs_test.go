package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"talkora/internal/models"
	"talkora/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint) (*models.Post, error)
	listFn           func(context.Context, repository.ListPostsFilter) ([]*models.Post, int64, error)
	listByAuthorFn   func(context.Context, string, int, int) ([]*models.Post, int64, error)
	recentByAuthorFn func(context.Context, string, int) ([]*models.Post, error)
	countByAuthorFn  func(context.Context, string) (int64, error)
	countFn          func(context.Context) (int64, error)
	deleteFn         func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, filter repository.ListPostsFilter) ([]*models.Post, int64, error) {
	return s.listFn(ctx, filter)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorEmail string, page, limit int) ([]*models.Post, int64, error) {
	return s.listByAuthorFn(ctx, authorEmail, page, limit)
}
func (s *postRepoStub) RecentByAuthor(ctx context.Context, authorEmail string, n int) ([]*models.Post, error) {
	return s.recentByAuthorFn(ctx, authorEmail, n)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorEmail string) (int64, error) {
	return s.countByAuthorFn(ctx, authorEmail)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn: func(_ context.Context, _ repository.ListPostsFilter) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		listByAuthorFn: func(_ context.Context, _ string, _, _ int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		recentByAuthorFn: func(_ context.Context, _ string, _ int) ([]*models.Post, error) { return nil, nil },
		countByAuthorFn:  func(_ context.Context, _ string) (int64, error) { return 0, nil },
		countFn:          func(_ context.Context) (int64, error) { return 0, nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
	}
}

// voteRepoStub is a stub for repository.VoteRepository.
type voteRepoStub struct {
	castFn        func(context.Context, uint, string, models.VoteDirection) (models.VoteOutcome, error)
	countVotersFn func(context.Context, uint) (int64, error)
}

func (s *voteRepoStub) Cast(ctx context.Context, postID uint, voterEmail string, direction models.VoteDirection) (models.VoteOutcome, error) {
	return s.castFn(ctx, postID, voterEmail, direction)
}
func (s *voteRepoStub) CountVoters(ctx context.Context, postID uint) (int64, error) {
	return s.countVotersFn(ctx, postID)
}

func noopVoteRepo() *voteRepoStub {
	return &voteRepoStub{
		castFn: func(_ context.Context, _ uint, _ string, _ models.VoteDirection) (models.VoteOutcome, error) {
			return models.OutcomeCast, nil
		},
		countVotersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	listByPostFn   func(context.Context, uint) ([]*models.Comment, error)
	reportFn       func(context.Context, uint, string) error
	ignoreReportFn func(context.Context, uint) error
	listReportedFn func(context.Context, int, int) ([]*models.Comment, int64, error)
	deleteFn       func(context.Context, uint) error
	countFn        func(context.Context) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Report(ctx context.Context, id uint, feedback string) error {
	return s.reportFn(ctx, id, feedback)
}
func (s *commentRepoStub) IgnoreReport(ctx context.Context, id uint) error {
	return s.ignoreReportFn(ctx, id)
}
func (s *commentRepoStub) ListReported(ctx context.Context, page, limit int) ([]*models.Comment, int64, error) {
	return s.listReportedFn(ctx, page, limit)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		listByPostFn:   func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		reportFn:       func(_ context.Context, _ uint, _ string) error { return nil },
		ignoreReportFn: func(_ context.Context, _ uint) error { return nil },
		listReportedFn: func(_ context.Context, _, _ int) ([]*models.Comment, int64, error) { return nil, 0, nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		countFn:        func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn          func(context.Context, *models.User) error
	getByEmailFn      func(context.Context, string) (*models.User, error)
	listFn            func(context.Context, string, int, int) ([]*models.User, int64, error)
	updateRoleFn      func(context.Context, uint, string) error
	updateLastLoginFn func(context.Context, string, time.Time) error
	grantMembershipFn func(context.Context, string) error
	countFn           func(context.Context) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) List(ctx context.Context, search string, page, limit int) ([]*models.User, int64, error) {
	return s.listFn(ctx, search, page, limit)
}
func (s *userRepoStub) UpdateRole(ctx context.Context, id uint, role string) error {
	return s.updateRoleFn(ctx, id, role)
}
func (s *userRepoStub) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	return s.updateLastLoginFn(ctx, email, at)
}
func (s *userRepoStub) GrantMembership(ctx context.Context, email string) error {
	return s.grantMembershipFn(ctx, email)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, models.NewNotFoundError("User not found")
		},
		listFn:            func(_ context.Context, _ string, _, _ int) ([]*models.User, int64, error) { return nil, 0, nil },
		updateRoleFn:      func(_ context.Context, _ uint, _ string) error { return nil },
		updateLastLoginFn: func(_ context.Context, _ string, _ time.Time) error { return nil },
		grantMembershipFn: func(_ context.Context, _ string) error { return nil },
		countFn:           func(_ context.Context) (int64, error) { return 0, nil },
	}
}

// paymentRepoStub is a stub for repository.PaymentRepository.
type paymentRepoStub struct {
	createFn      func(context.Context, *models.Payment) error
	listByEmailFn func(context.Context, string) ([]*models.Payment, error)
}

func (s *paymentRepoStub) Create(ctx context.Context, payment *models.Payment) error {
	return s.createFn(ctx, payment)
}
func (s *paymentRepoStub) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	return s.listByEmailFn(ctx, email)
}

func noopPaymentRepo() *paymentRepoStub {
	return &paymentRepoStub{
		createFn:      func(_ context.Context, _ *models.Payment) error { return nil },
		listByEmailFn: func(_ context.Context, _ string) ([]*models.Payment, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}
