package service

import (
	"context"
	"errors"
	"testing"

	"fandom/internal/models"

	"gorm.io/gorm"
)

func postFixture() (*postRepoStub, *membershipRepoStub, *communityRepoStub) {
	posts := &postRepoStub{
		getByIDFn: func(ctx context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, CommunityID: 1, Title: "Tour dates"}, nil
		},
		createFn: func(ctx context.Context, post *models.Post) error {
			post.ID = 10
			return nil
		},
	}
	members := &membershipRepoStub{
		existsFn: func(ctx context.Context, communityID, userID uint) (bool, error) {
			return true, nil
		},
	}
	communities := &communityRepoStub{
		getByIDFn: func(ctx context.Context, id uint) (*models.Community, error) {
			return &models.Community{ID: id, ArtistID: 7, Name: "Indie Hive"}, nil
		},
	}
	return posts, members, communities
}

func TestCreatePost_TitleRequired(t *testing.T) {
	posts, members, communities := postFixture()
	svc := NewPostService(posts, members, communities)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{CommunityID: 1, Title: "   "})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeBusinessRule {
		t.Fatalf("expected BUSINESS_RULE, got %v", err)
	}
}

func TestCreatePost_CommunityNotFound(t *testing.T) {
	posts, members, communities := postFixture()
	communities.getByIDFn = func(ctx context.Context, id uint) (*models.Community, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewPostService(posts, members, communities)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{CommunityID: 99, Title: "Tour dates"})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestUpdatePost_PartialMerge(t *testing.T) {
	posts, members, communities := postFixture()
	stored := &models.Post{ID: 10, CommunityID: 1, Title: "Tour dates", Content: "old", FileURL: "old.png"}
	var saved *models.Post
	posts.getByIDFn = func(ctx context.Context, id uint) (*models.Post, error) {
		p := *stored
		return &p, nil
	}
	posts.updateFn = func(ctx context.Context, post *models.Post) error {
		saved = post
		return nil
	}
	svc := NewPostService(posts, members, communities)

	content := "new content"
	empty := ""
	_, err := svc.UpdatePost(context.Background(), 10, UpdatePostInput{
		Content: &content,
		FileURL: &empty, // empty string leaves the stored value alone
	})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if saved.Title != "Tour dates" || saved.Content != "new content" || saved.FileURL != "old.png" {
		t.Fatalf("unexpected merge result: %+v", saved)
	}
}

func TestLike_PostNotFound(t *testing.T) {
	posts, members, communities := postFixture()
	posts.getByIDFn = func(ctx context.Context, id uint) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewPostService(posts, members, communities)

	_, err := svc.Like(context.Background(), 99, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestLike_RequiresMembership(t *testing.T) {
	posts, members, communities := postFixture()
	members.existsFn = func(ctx context.Context, communityID, userID uint) (bool, error) {
		return false, nil
	}
	svc := NewPostService(posts, members, communities)

	_, err := svc.Like(context.Background(), 10, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeBusinessRule {
		t.Fatalf("expected BUSINESS_RULE, got %v", err)
	}
	if appErr.Message != "Access denied: user is not a member of the community" {
		t.Fatalf("unexpected message: %q", appErr.Message)
	}
}

func TestLike_ReturnsFreshCount(t *testing.T) {
	posts, members, communities := postFixture()
	posts.createLikeFn = func(ctx context.Context, like *models.Like) error {
		like.ID = 1
		return nil
	}
	posts.countLikesFn = func(ctx context.Context, postID uint) (int64, error) {
		return 5, nil
	}
	svc := NewPostService(posts, members, communities)

	count, err := svc.Like(context.Background(), 10, 2)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected count 5, got %d", count)
	}
}

func TestLike_Twice(t *testing.T) {
	posts, members, communities := postFixture()
	posts.createLikeFn = func(ctx context.Context, like *models.Like) error {
		return gorm.ErrDuplicatedKey
	}
	svc := NewPostService(posts, members, communities)

	_, err := svc.Like(context.Background(), 10, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeAlreadyExists {
		t.Fatalf("expected ALREADY_EXISTS, got %v", err)
	}
}

func TestUnlike_NeverLiked(t *testing.T) {
	posts, members, communities := postFixture()
	posts.deleteLikeFn = func(ctx context.Context, postID, userID uint) (int64, error) {
		return 0, nil
	}
	svc := NewPostService(posts, members, communities)

	_, err := svc.Unlike(context.Background(), 10, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestUnlike_ReturnsFreshCount(t *testing.T) {
	posts, members, communities := postFixture()
	posts.deleteLikeFn = func(ctx context.Context, postID, userID uint) (int64, error) {
		return 1, nil
	}
	posts.countLikesFn = func(ctx context.Context, postID uint) (int64, error) {
		return 4, nil
	}
	svc := NewPostService(posts, members, communities)

	count, err := svc.Unlike(context.Background(), 10, 2)
	if err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected count 4, got %d", count)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	posts, members, communities := postFixture()
	posts.getByIDFn = func(ctx context.Context, id uint) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewPostService(posts, members, communities)

	_, err := svc.GetPost(context.Background(), 99)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	posts, members, communities := postFixture()
	posts.deleteFn = func(ctx context.Context, id uint) error {
		return gorm.ErrRecordNotFound
	}
	svc := NewPostService(posts, members, communities)

	err := svc.DeletePost(context.Background(), 99)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
