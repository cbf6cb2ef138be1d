// Package service contains the application's business logic layer.
package service

import (
	"context"
	"strings"

	"talkora/internal/models"
	"talkora/internal/observability"
	"talkora/internal/repository"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 50000
	recentPostsLimit  = 3
)

type PostService struct {
	postRepo     repository.PostRepository
	voteRepo     repository.VoteRepository
	isAdmin      func(ctx context.Context, email string) (bool, error)
	isGoldMember func(ctx context.Context, email string) (bool, error)
}

type CreatePostInput struct {
	AuthorEmail string
	Title       string
	Description string
	Tags        []string
}

type ListPostsInput struct {
	Page   int
	Limit  int
	Sort   string
	Search string
}

type DeletePostInput struct {
	PostID         uint
	RequesterEmail string
}

// PostsInfo summarizes an author's posting footprint for quota display.
type PostsInfo struct {
	Count    int64 `json:"count"`
	IsMember bool  `json:"isMember"`
}

func NewPostService(
	postRepo repository.PostRepository,
	voteRepo repository.VoteRepository,
	isAdmin func(ctx context.Context, email string) (bool, error),
	isGoldMember func(ctx context.Context, email string) (bool, error),
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		voteRepo:     voteRepo,
		isAdmin:      isAdmin,
		isGoldMember: isGoldMember,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Description == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 50000 characters)")
	}
	if in.Tags == nil {
		return nil, models.NewValidationError("Tags are required")
	}

	post := &models.Post{
		Title:       in.Title,
		Description: in.Description,
		AuthorEmail: strings.ToLower(in.AuthorEmail),
		Visible:     true,
	}
	for i, raw := range in.Tags {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			return nil, models.NewValidationError("Tags must not be empty")
		}
		post.Tags = append(post.Tags, models.PostTag{Position: i, Name: name})
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, int64, error) {
	sort := in.Sort
	if sort != repository.SortPopular {
		sort = repository.SortNewest
	}
	return s.postRepo.List(ctx, repository.ListPostsFilter{
		Search: in.Search,
		Sort:   sort,
		Page:   in.Page,
		Limit:  in.Limit,
	})
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListUserPosts(ctx context.Context, authorEmail string, page, limit int) ([]*models.Post, int64, error) {
	if authorEmail == "" {
		return nil, 0, models.NewValidationError("Missing authorEmail")
	}
	return s.postRepo.ListByAuthor(ctx, strings.ToLower(authorEmail), page, limit)
}

func (s *PostService) RecentPosts(ctx context.Context, authorEmail string) ([]*models.Post, error) {
	return s.postRepo.RecentByAuthor(ctx, strings.ToLower(authorEmail), recentPostsLimit)
}

// CastVote reconciles one vote request and returns the post with refreshed
// counters.
func (s *PostService) CastVote(ctx context.Context, postID uint, voterEmail, direction string) (*models.Post, error) {
	dir, err := models.ParseVoteDirection(direction)
	if err != nil {
		return nil, err
	}
	outcome, err := s.voteRepo.Cast(ctx, postID, strings.ToLower(voterEmail), dir)
	if err != nil {
		return nil, err
	}
	observability.VotesCast.WithLabelValues(string(outcome)).Inc()
	return s.postRepo.GetByID(ctx, postID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	requester := strings.ToLower(in.RequesterEmail)
	if post.AuthorEmail != requester {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("Unauthorized to delete this post")
		}
		admin, err := s.isAdmin(ctx, requester)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewUnauthorizedError("Unauthorized to delete this post")
		}
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

// GetPostsInfo reports how many posts the author has and whether they hold a
// gold membership.
func (s *PostService) GetPostsInfo(ctx context.Context, email string) (*PostsInfo, error) {
	if email == "" {
		return nil, models.NewValidationError("Missing email")
	}
	count, err := s.postRepo.CountByAuthor(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	isMember := false
	if s.isGoldMember != nil {
		isMember, err = s.isGoldMember(ctx, strings.ToLower(email))
		if err != nil && !models.IsNotFound(err) {
			return nil, err
		}
	}
	return &PostsInfo{Count: count, IsMember: isMember}, nil
}
