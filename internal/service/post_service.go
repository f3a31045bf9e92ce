package service

import (
	"context"
	"errors"
	"strings"

	"fandom/internal/models"
	"fandom/internal/repository"

	"gorm.io/gorm"
)

// CreatePostInput carries the fields for post creation.
type CreatePostInput struct {
	CommunityID uint
	Title       string
	Content     string
	FileURL     string
}

// UpdatePostInput carries a partial post update. Nil pointers and empty
// strings leave the stored value unchanged.
type UpdatePostInput struct {
	Title   *string
	Content *string
	FileURL *string
}

// PostService owns posts scoped to a community and like relations
// scoped to a post, with idempotent counting.
type PostService struct {
	postRepo      repository.PostRepository
	memberRepo    repository.MembershipRepository
	communityRepo repository.CommunityRepository
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	memberRepo repository.MembershipRepository,
	communityRepo repository.CommunityRepository,
) *PostService {
	return &PostService{
		postRepo:      postRepo,
		memberRepo:    memberRepo,
		communityRepo: communityRepo,
	}
}

// ListPosts returns the community's posts with like counts computed
// from current like rows.
func (s *PostService) ListPosts(ctx context.Context, communityID uint) ([]models.Post, error) {
	posts, err := s.postRepo.ListByCommunity(ctx, communityID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// GetPost returns one post with its current like count.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// CreatePost creates a post in a community. Title is required.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewBusinessRuleError("Post title is required")
	}

	if _, err := s.communityRepo.GetByID(ctx, in.CommunityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Community", in.CommunityID)
		}
		return nil, models.NewInternalError(err)
	}

	post := &models.Post{
		CommunityID: in.CommunityID,
		Title:       in.Title,
		Content:     in.Content,
		FileURL:     in.FileURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// UpdatePost merges the supplied fields over the stored ones.
func (s *PostService) UpdatePost(ctx context.Context, postID uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		post.Title = *in.Title
	}
	if in.Content != nil && *in.Content != "" {
		post.Content = *in.Content
	}
	if in.FileURL != nil && *in.FileURL != "" {
		post.FileURL = *in.FileURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// DeletePost removes a post and its likes.
func (s *PostService) DeletePost(ctx context.Context, postID uint) error {
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// ListLikes returns every like row of a post.
func (s *PostService) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}
	likes, err := s.postRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

// Like records that a user liked a post and returns the updated count.
// Liking requires current membership in the post's community; a user
// may like a given post at most once.
func (s *PostService) Like(ctx context.Context, postID, userID uint) (int64, error) {
	if userID == 0 {
		return 0, models.NewMissingParameterError("user_id")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Post", postID)
		}
		return 0, models.NewInternalError(err)
	}

	isMember, err := s.memberRepo.Exists(ctx, post.CommunityID, userID)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	if !isMember {
		return 0, models.NewBusinessRuleError("Access denied: user is not a member of the community")
	}

	like := &models.Like{PostID: postID, UserID: userID}
	if err := s.postRepo.CreateLike(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, models.NewAlreadyExistsError("User has already liked the post")
		}
		return 0, models.NewInternalError(err)
	}

	count, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// Unlike removes a like and returns the updated count. Unliking a post
// the user never liked fails NOT_FOUND.
func (s *PostService) Unlike(ctx context.Context, postID, userID uint) (int64, error) {
	rows, err := s.postRepo.DeleteLike(ctx, postID, userID)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	if rows == 0 {
		return 0, models.NewNotFoundError("Like", postID)
	}

	count, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
