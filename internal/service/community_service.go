// Package service implements the managers that own the moderation and
// membership consistency rules: communities, memberships, bans, posts
// with likes, and the banned-word registry.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fandom/internal/identity"
	"fandom/internal/models"
	"fandom/internal/repository"

	"gorm.io/gorm"
)

// CommunityView is the composed, externally-facing representation of a
// community: its own fields, the resolved artist profile and derived
// counts. It is recomputed on every read.
type CommunityView struct {
	ID          uint                   `json:"id"`
	Artist      identity.ArtistProfile `json:"artist"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	ImageURL    string                 `json:"image_url"`
	CreatedAt   time.Time              `json:"created_at"`
	PostCount   int64                  `json:"post_count"`
	MemberCount int64                  `json:"member_count"`
	BannedWords []string               `json:"banned_words"`
}

// CreateCommunityInput carries the fields for community creation.
type CreateCommunityInput struct {
	ArtistID    uint
	Name        string
	Description string
	ImageURL    string
	BannedWords []string
}

// UpdateCommunityInput carries a partial update. Nil pointers and empty
// strings leave the stored value unchanged; a non-nil BannedWords
// replaces the whole set.
type UpdateCommunityInput struct {
	Name        *string
	Description *string
	ImageURL    *string
	BannedWords *[]string
}

// CommunityService is the community aggregate builder plus the
// banned-word registry scoped to a community.
type CommunityService struct {
	communityRepo repository.CommunityRepository
	wordRepo      repository.BannedWordRepository
	resolver      identity.Resolver
}

// NewCommunityService returns a new CommunityService.
func NewCommunityService(
	communityRepo repository.CommunityRepository,
	wordRepo repository.BannedWordRepository,
	resolver identity.Resolver,
) *CommunityService {
	return &CommunityService{
		communityRepo: communityRepo,
		wordRepo:      wordRepo,
		resolver:      resolver,
	}
}

// cleanWords trims entries, drops empties and removes duplicates while
// preserving first-occurrence order.
func cleanWords(words []string) []string {
	cleaned := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		cleaned = append(cleaned, word)
	}
	return cleaned
}

// buildView composes the aggregate. A community whose owner cannot be
// resolved is considered inconsistent: the whole view fails rather than
// returning partial data.
func (s *CommunityService) buildView(ctx context.Context, community *models.Community) (*CommunityView, error) {
	artist, err := s.resolver.ResolveArtist(ctx, community.ArtistID)
	if err != nil {
		return nil, err
	}

	postCount, err := s.communityRepo.CountPosts(ctx, community.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	memberCount, err := s.communityRepo.CountMembers(ctx, community.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	words, err := s.listWords(ctx, community.ID)
	if err != nil {
		return nil, err
	}

	return &CommunityView{
		ID:          community.ID,
		Artist:      *artist,
		Name:        community.Name,
		Description: community.Description,
		ImageURL:    community.ImageURL,
		CreatedAt:   community.CreatedAt,
		PostCount:   postCount,
		MemberCount: memberCount,
		BannedWords: words,
	}, nil
}

// GetCommunity returns the composed view of one community.
func (s *CommunityService) GetCommunity(ctx context.Context, communityID uint) (*CommunityView, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Community", communityID)
		}
		return nil, models.NewInternalError(err)
	}
	return s.buildView(ctx, community)
}

// ListCommunities returns the composed views of every community.
func (s *CommunityService) ListCommunities(ctx context.Context) ([]*CommunityView, error) {
	communities, err := s.communityRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.buildViews(ctx, communities)
}

// ListCommunitiesForUser returns the views of every community the user
// currently belongs to.
func (s *CommunityService) ListCommunitiesForUser(ctx context.Context, userID uint) ([]*CommunityView, error) {
	communities, err := s.communityRepo.ListByMemberUserID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.buildViews(ctx, communities)
}

func (s *CommunityService) buildViews(ctx context.Context, communities []models.Community) ([]*CommunityView, error) {
	views := make([]*CommunityView, 0, len(communities))
	for i := range communities {
		view, err := s.buildView(ctx, &communities[i])
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// CreateCommunity creates a community for an artist. At most one
// community may exist per artist and per name; the unique indexes are
// the authoritative guard, the existence pre-check is a fast path.
func (s *CommunityService) CreateCommunity(ctx context.Context, in CreateCommunityInput) (*CommunityView, error) {
	if in.ArtistID == 0 {
		return nil, models.NewMissingParameterError("artist_id")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewMissingParameterError("name")
	}

	taken, err := s.communityRepo.ExistsByArtistID(ctx, in.ArtistID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if taken {
		return nil, models.NewAlreadyExistsError("Artist already owns a community")
	}

	community := &models.Community{
		ArtistID:    in.ArtistID,
		Name:        name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := s.communityRepo.Create(ctx, community); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewAlreadyExistsError("Community name or artist already taken")
		}
		return nil, models.NewInternalError(err)
	}

	if words := cleanWords(in.BannedWords); len(words) > 0 {
		if err := s.wordRepo.Replace(ctx, community.ID, words); err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	// The local write is committed; only the composed response can
	// still fail, on identity resolution.
	return s.buildView(ctx, community)
}

// UpdateCommunity merges the supplied fields over the stored ones.
func (s *CommunityService) UpdateCommunity(ctx context.Context, communityID uint, in UpdateCommunityInput) (*CommunityView, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Community", communityID)
		}
		return nil, models.NewInternalError(err)
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		community.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil && *in.Description != "" {
		community.Description = *in.Description
	}
	if in.ImageURL != nil && *in.ImageURL != "" {
		community.ImageURL = *in.ImageURL
	}

	if err := s.communityRepo.Update(ctx, community); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewAlreadyExistsError("Community name already taken")
		}
		return nil, models.NewInternalError(err)
	}

	if in.BannedWords != nil {
		if err := s.wordRepo.Replace(ctx, community.ID, cleanWords(*in.BannedWords)); err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	return s.buildView(ctx, community)
}

// DeleteCommunity removes the community and cascades to its
// memberships, bans, posts and the posts' likes.
func (s *CommunityService) DeleteCommunity(ctx context.Context, communityID uint) error {
	if err := s.communityRepo.Delete(ctx, communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Community", communityID)
		}
		return models.NewInternalError(err)
	}
	return nil
}
